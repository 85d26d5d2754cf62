//go:build windows

package msgqueue

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows implementation of the queue probe using PeekMessageW

const (
	PM_NOREMOVE = 0x0000
	PM_REMOVE   = 0x0001
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procPeekMessageW = user32.NewProc("PeekMessageW")
)

type queueProbe struct{}

// NewProbe returns a probe backed by the calling thread's message queue.
func NewProbe() Probe {
	return queueProbe{}
}

// Peek calls PeekMessageW with the given filter range. The record buffer is
// a per-call local that the message is copied into; nothing is retained
// after Peek returns.
func (queueProbe) Peek(filterMin, filterMax uint32, remove bool) (Record, bool) {
	var rec Record
	flags := uintptr(PM_NOREMOVE)
	if remove {
		flags = PM_REMOVE
	}

	ret, _, _ := procPeekMessageW.Call(
		uintptr(unsafe.Pointer(&rec)),
		0, // any window owned by the calling thread
		uintptr(filterMin),
		uintptr(filterMax),
		flags,
	)
	if int32(ret) == 0 {
		return Record{}, false
	}
	return rec, true
}
