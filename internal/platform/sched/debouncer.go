// internal/platform/sched/debouncer.go
package sched

import (
	"sync"
	"time"
)

// Timer is the cancellable handle a Clock hands out.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed work. Tests inject a fake to simulate time
// deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall-clock implementation.
func SystemClock() Clock { return systemClock{} }

// Debouncer coalesces rapid triggers into a single trailing-edge run: each
// Trigger cancels the pending task and schedules the new one after the delay.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	clock   Clock
	pending Timer
	stopped bool
}

// NewDebouncer creates a wall-clock debouncer.
func NewDebouncer(delay time.Duration) *Debouncer {
	return NewDebouncerWithClock(delay, SystemClock())
}

// NewDebouncerWithClock is useful for tests.
func NewDebouncerWithClock(delay time.Duration, clock Clock) *Debouncer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Debouncer{delay: delay, clock: clock}
}

// Trigger schedules fn to run after the delay, cancelling any task still
// pending from an earlier Trigger.
func (d *Debouncer) Trigger(fn func()) {
	if d == nil || fn == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.clock.AfterFunc(d.delay, fn)
}

// Stop cancels the pending task, if any, and refuses further triggers.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
