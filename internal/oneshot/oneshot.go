// Package oneshot provides a single-shot countdown timer used to throttle
// how often an expensive check is performed inside a hot loop.
package oneshot

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Timer states.
const (
	Idle int32 = iota
	Running
	TimedOut
)

var (
	// ErrInvalidDuration is returned by Run for a non-positive duration.
	ErrInvalidDuration = errors.New("oneshot: duration must be positive")

	// ErrAlreadyRunning is returned by Run while a countdown is in flight.
	// The existing countdown is left untouched.
	ErrAlreadyRunning = errors.New("oneshot: timer already running")
)

// Timer is a three-state single-shot timer: Idle until Run, Running while
// the countdown is in flight, TimedOut once it expires. It fires at most
// once per Run and must be explicitly restarted; restarting is only valid
// from Idle or TimedOut.
//
// The countdown runs on a background task whose only effect is the
// Running to TimedOut transition. All other transitions belong to the
// owning goroutine.
type Timer struct {
	mu    sync.Mutex
	state atomic.Int32
	gen   uint64 // incremented by Reset; stale countdowns compare and bail
	timer *time.Timer
}

// New returns a timer in the Idle state.
func New() *Timer {
	return &Timer{}
}

// Run starts a countdown of d. It fails with ErrInvalidDuration if d is not
// positive and with ErrAlreadyRunning if a countdown is already in flight;
// in both cases the state is left unchanged.
func (t *Timer) Run(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.Load() == Running {
		return ErrAlreadyRunning
	}

	t.state.Store(Running)
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		t.expire(gen)
	})
	return nil
}

// expire performs the countdown's single transition. A Reset since the
// countdown was armed bumps the generation, so a stale countdown can never
// resurrect a timer that was explicitly stopped.
func (t *Timer) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gen != gen || t.state.Load() != Running {
		return
	}
	t.state.Store(TimedOut)
}

// Reset cancels any in-flight countdown and returns the timer to Idle. It
// always succeeds, from any state, and is idempotent.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.state.Store(Idle)
}

// TimedOut reports whether the countdown has expired. It is a single atomic
// load, cheap enough to call on every iteration of a hot loop.
func (t *Timer) TimedOut() bool {
	return t.state.Load() == TimedOut
}

// State returns the current state, one of Idle, Running or TimedOut.
func (t *Timer) State() int32 {
	return t.state.Load()
}
