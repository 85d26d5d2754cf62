// Package checkpoint lets a long-running, CPU-bound loop notice a user
// abort request (escape key or left mouse button) without ever blocking on
// input. The caller gates the check behind a oneshot.Timer so the queue is
// only probed every so often, and decides at its own pace whether to stop.
package checkpoint

import (
	"fmt"

	"cancelpoint/internal/msgqueue"
)

// AbortKind identifies what the user did to request cancellation.
type AbortKind int

const (
	// AbortEscape means the escape key was pressed.
	AbortEscape AbortKind = iota
	// AbortLeftButton means the left mouse button was pressed; the
	// signal carries the coordinates.
	AbortLeftButton
)

// AbortError signals that the user requested cancellation. It is
// recoverable control flow, not a failure: the caller catches it with
// errors.As, asks the user whether to really stop, and on decline resumes
// the interrupted loop. Nothing unwinds, so the loop's accumulated state
// survives the decision point.
type AbortError struct {
	Kind AbortKind
	X, Y int16 // valid for AbortLeftButton
}

func (e *AbortError) Error() string {
	if e.Kind == AbortLeftButton {
		return fmt.Sprintf("user abort: left button down at (%d, %d)", e.X, e.Y)
	}
	return "user abort: escape pressed"
}

// Checkpoint probes the input message queue for abort-worthy events. All
// probing happens inline on the calling goroutine, never handed off; on
// platforms with per-thread message queues the caller must therefore pin
// its goroutine with runtime.LockOSThread for the lifetime of the loop, so
// that every check lands on the same queue.
type Checkpoint struct {
	probe msgqueue.Probe
}

// New creates a checkpoint over the given probe. With the no-op probe of an
// unsupported platform every method degrades to "no abort requested".
func New(probe msgqueue.Probe) *Checkpoint {
	return &Checkpoint{probe: probe}
}

// CheckForUserAbort polls the queue once. It returns a *AbortError if the
// user pressed escape or the left mouse button since the last check, nil
// otherwise. It never blocks.
func (c *Checkpoint) CheckForUserAbort() error {
	if c.TestForEscape() {
		return &AbortError{Kind: AbortEscape}
	}
	if x, y, ok := c.TestForLeftButtonDown(); ok {
		return &AbortError{Kind: AbortLeftButton, X: x, Y: y}
	}
	return nil
}

// TestForEscape drains the queued keyboard backlog and reports whether any
// record in it was an escape key-down. The whole backlog is dequeued before
// the answer: missing a later repeat of the key is acceptable, but stale
// key-down records left queued would cause false repeats on the next check.
func (c *Checkpoint) TestForEscape() bool {
	seen := false
	for {
		rec, ok := c.probe.Peek(msgqueue.WM_KEYFIRST, msgqueue.WM_KEYLAST, true)
		if !ok {
			return seen
		}
		event := msgqueue.Classify(rec, msgqueue.KindKeyboard)
		if event.Kind == msgqueue.EventKeyDown && event.Key == msgqueue.VK_ESCAPE {
			seen = true
		}
	}
}

// TestForLeftButtonDown reports a pending left-button press and its
// coordinates. The client-area message is dequeued; a non-client press
// (title bar, window chrome) is only peeked, so the host's own window
// handling still receives it and dragging/closing keep working.
func (c *Checkpoint) TestForLeftButtonDown() (x, y int16, ok bool) {
	if rec, found := c.probe.Peek(msgqueue.WM_LBUTTONDOWN, msgqueue.WM_LBUTTONDOWN, true); found {
		event := msgqueue.Classify(rec, msgqueue.KindMouse)
		return event.X, event.Y, true
	}
	if rec, found := c.probe.Peek(msgqueue.WM_NCLBUTTONDOWN, msgqueue.WM_NCLBUTTONDOWN, false); found {
		event := msgqueue.Classify(rec, msgqueue.KindMouse)
		return event.X, event.Y, true
	}
	return 0, 0, false
}
