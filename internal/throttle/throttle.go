package throttle

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Throttle wraps an action with a minimum inter-invocation interval.
// The first call in a burst runs immediately; while inside the window only
// the most recent arguments are remembered, and a single timer flushes them
// once the window elapses. Staleness is therefore bounded by the delay.
type Throttle[T any] struct {
	clock clockwork.Clock
	delay time.Duration
	fn    func(T)

	mutex   sync.Mutex
	last    time.Time
	pending *T
	timer   clockwork.Timer
	stopped bool
}

func New[T any](clock clockwork.Clock, delay time.Duration, fn func(T)) *Throttle[T] {
	return &Throttle[T]{
		clock: clock,
		delay: delay,
		fn:    fn,
	}
}

// Do invokes the wrapped action now if the window has elapsed, otherwise
// replaces any pending arguments and schedules a single trailing invocation.
func (t *Throttle[T]) Do(args T) {
	t.mutex.Lock()
	if t.stopped {
		t.mutex.Unlock()
		return
	}

	now := t.clock.Now()
	if t.timer == nil && (t.last.IsZero() || now.Sub(t.last) >= t.delay) {
		t.last = now
		t.mutex.Unlock()
		t.fn(args)
		return
	}

	t.pending = &args
	if t.timer == nil {
		remaining := t.delay - now.Sub(t.last)
		t.timer = t.clock.AfterFunc(remaining, t.fire)
	}
	t.mutex.Unlock()
}

// Flush invokes any pending call immediately, ahead of its timer.
func (t *Throttle[T]) Flush() {
	t.mutex.Lock()
	if t.stopped || t.pending == nil {
		t.mutex.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	args := *t.pending
	t.pending = nil
	t.last = t.clock.Now()
	t.mutex.Unlock()

	t.fn(args)
}

// Stop cancels any pending invocation. No call fires after Stop returns.
func (t *Throttle[T]) Stop() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stopped = true
	t.pending = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Throttle[T]) fire() {
	t.mutex.Lock()
	t.timer = nil
	if t.stopped || t.pending == nil {
		t.mutex.Unlock()
		return
	}
	args := *t.pending
	t.pending = nil
	t.last = t.clock.Now()
	t.mutex.Unlock()

	t.fn(args)
}
