package msgqueue

import (
	"encoding/binary"
	"testing"
)

// keyDownRecord builds a synthetic key-down record carrying the given key code.
func keyDownRecord(key byte) Record {
	var rec Record
	binary.LittleEndian.PutUint16(rec[offMessage:], WM_KEYDOWN)
	rec[offKey] = key
	return rec
}

// mouseRecord builds a synthetic left-button record at the given coordinates.
func mouseRecord(msg uint16, x, y int16) Record {
	var rec Record
	binary.LittleEndian.PutUint16(rec[offMessage:], msg)
	binary.LittleEndian.PutUint16(rec[offMouseX:], uint16(x))
	binary.LittleEndian.PutUint16(rec[offMouseY:], uint16(y))
	return rec
}

// TestClassifyEscapeKeyDown tests that an escape key-down record classifies
// as a key-down event with the escape code.
func TestClassifyEscapeKeyDown(t *testing.T) {
	rec := keyDownRecord(VK_ESCAPE)

	event := Classify(rec, KindKeyboard)
	if event.Kind != EventKeyDown {
		t.Fatalf("Expected EventKeyDown, got %v", event.Kind)
	}
	if event.Key != VK_ESCAPE {
		t.Errorf("Expected key 0x1B, got 0x%X", event.Key)
	}
}

// TestClassifyOtherKeyboardMessage tests that keyboard records of any other
// message type classify as no event.
func TestClassifyOtherKeyboardMessage(t *testing.T) {
	for _, msg := range []uint16{0x0101 /* key-up */, 0x0102 /* char */, WM_KEYLAST, 0} {
		var rec Record
		binary.LittleEndian.PutUint16(rec[offMessage:], msg)
		rec[offKey] = VK_ESCAPE

		event := Classify(rec, KindKeyboard)
		if event.Kind != EventNone {
			t.Errorf("Message 0x%X: expected EventNone, got %v", msg, event.Kind)
		}
	}
}

// TestClassifyLeftButtonDown tests that a left-button record yields signed
// coordinates read from the record.
func TestClassifyLeftButtonDown(t *testing.T) {
	rec := mouseRecord(WM_LBUTTONDOWN, -5, 100)

	event := Classify(rec, KindMouse)
	if event.Kind != EventLeftButtonDown {
		t.Fatalf("Expected EventLeftButtonDown, got %v", event.Kind)
	}
	if event.X != -5 {
		t.Errorf("Expected x -5, got %d", event.X)
	}
	if event.Y != 100 {
		t.Errorf("Expected y 100, got %d", event.Y)
	}
}

// TestClassifyZeroMessageStillClassifies tests that classification does not
// re-check availability: a zero-typed record handed to the mouse classifier
// still produces an event from its coordinate fields.
func TestClassifyZeroMessageStillClassifies(t *testing.T) {
	rec := mouseRecord(0, 7, -9)

	event := Classify(rec, KindMouse)
	if event.Kind != EventLeftButtonDown {
		t.Fatalf("Expected EventLeftButtonDown, got %v", event.Kind)
	}
	if event.X != 7 || event.Y != -9 {
		t.Errorf("Expected (7, -9), got (%d, %d)", event.X, event.Y)
	}
}

// TestRecordOffsets tests the documented byte layout of the raw record.
func TestRecordOffsets(t *testing.T) {
	var rec Record
	rec[0x08] = 0x01
	rec[0x09] = 0x02
	rec[0x10] = 0x1B
	rec[0x18] = 0xFB
	rec[0x19] = 0xFF
	rec[0x1A] = 0x64
	rec[0x1B] = 0x00

	if got := rec.Message(); got != 0x0201 {
		t.Errorf("Expected message 0x0201, got 0x%X", got)
	}
	if got := rec.Key(); got != 0x1B {
		t.Errorf("Expected key 0x1B, got 0x%X", got)
	}
	if got := rec.MouseX(); got != -5 {
		t.Errorf("Expected x -5, got %d", got)
	}
	if got := rec.MouseY(); got != 100 {
		t.Errorf("Expected y 100, got %d", got)
	}
}
