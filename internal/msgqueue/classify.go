package msgqueue

// RecordKind tells Classify which family of record it is looking at.
type RecordKind int

const (
	// KindKeyboard marks a record peeked with the keyboard filter range.
	KindKeyboard RecordKind = iota
	// KindMouse marks a record peeked with a left-button filter.
	KindMouse
)

// EventKind identifies the semantic input event derived from a record.
type EventKind int

const (
	// EventNone means the record carried nothing of interest.
	EventNone EventKind = iota
	// EventKeyDown is a key press; Event.Key holds the ASCII code.
	EventKeyDown
	// EventLeftButtonDown is a left mouse button press; Event.X and
	// Event.Y hold the coordinates.
	EventLeftButtonDown
)

// Event is a semantic input event produced fresh per classification.
type Event struct {
	Kind EventKind
	Key  byte
	X, Y int16
}

// Classify interprets a raw record as a semantic event. Call it only with
// records a probe reported available; classification does not re-check
// availability.
//
// Keyboard records whose message type is anything other than key-down
// classify as no event; the queue carries many message kinds irrelevant
// here. The key byte is read as ASCII; multi-byte input is not decoded.
func Classify(rec Record, kind RecordKind) Event {
	switch kind {
	case KindKeyboard:
		if rec.Message() != WM_KEYDOWN {
			return Event{}
		}
		return Event{Kind: EventKeyDown, Key: rec.Key()}
	case KindMouse:
		return Event{Kind: EventLeftButtonDown, X: rec.MouseX(), Y: rec.MouseY()}
	}
	return Event{}
}
