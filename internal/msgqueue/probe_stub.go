//go:build !windows

package msgqueue

// Stub probe for platforms without a per-thread input message queue

type noopProbe struct{}

// NewProbe returns a probe that always reports the queue empty. Callers
// degrade to a no-op rather than failing on unsupported platforms.
func NewProbe() Probe {
	return noopProbe{}
}

// Peek reports no message pending.
func (noopProbe) Peek(filterMin, filterMax uint32, remove bool) (Record, bool) {
	return Record{}, false
}
