// Package msgqueue provides non-blocking access to the OS input message
// queue and classification of raw queue records into input events.
package msgqueue

import "encoding/binary"

// Message-type codes and peek filters, fixed by the Windows message ABI.
const (
	WM_KEYFIRST      = 0x0100
	WM_KEYDOWN       = 0x0100
	WM_KEYLAST       = 0x0108
	WM_LBUTTONDOWN   = 0x0201
	WM_NCLBUTTONDOWN = 0x00A1

	VK_ESCAPE = 0x1B
)

// Record layout offsets within the 48-byte raw message record.
const (
	offMessage = 0x08 // message-type code, u16
	offKey     = 0x10 // ASCII key code, valid for key-down records only
	offMouseX  = 0x18 // mouse x, i16
	offMouseY  = 0x1A // mouse y, i16
)

// Record is one raw message record as the OS queue delivers it. It is only
// meaningful immediately after a successful peek; it is never retained
// across peeks.
type Record [48]byte

// Message returns the message-type code of the record.
func (r *Record) Message() uint16 {
	return binary.LittleEndian.Uint16(r[offMessage:])
}

// Key returns the ASCII key code. Only meaningful when Message reports a
// key-down record.
func (r *Record) Key() byte {
	return r[offKey]
}

// MouseX returns the mouse x coordinate of a mouse record.
func (r *Record) MouseX() int16 {
	return int16(binary.LittleEndian.Uint16(r[offMouseX:]))
}

// MouseY returns the mouse y coordinate of a mouse record.
func (r *Record) MouseY() int16 {
	return int16(binary.LittleEndian.Uint16(r[offMouseY:]))
}

// Probe peeks the OS input message queue without blocking. Peek reports
// whether a message matching the [filterMin, filterMax] type range is
// pending and returns its record; remove controls whether the message is
// dequeued or left for the host's own message handling. Peek returns
// immediately whether or not a message is pending.
//
// Message queues are per OS thread on Windows, so all Peek calls against
// one queue must be made from the same thread: callers pin their goroutine
// with runtime.LockOSThread before the first peek and keep it pinned for
// the lifetime of the polling loop.
type Probe interface {
	Peek(filterMin, filterMax uint32, remove bool) (Record, bool)
}
