package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Debouncer delays invoking a function with an argument until a wait duration
// has passed since the last call, using the argument of that last call.
//
// All of the New* functions in this package are thin wrappers around a
// Debouncer. Use it directly when the pending state needs to be inspected.
type Debouncer[A any] struct {
	// Configuration
	wait  time.Duration
	fn    func(A)
	clock clockwork.Clock
	log   zerolog.Logger

	// State
	mux   sync.Mutex
	arg   A
	timer handle
}

// NewDebouncer creates a new Debouncer which invokes f with the argument of the
// most recent Call, once wait has elapsed without any further calls.
//
// f is not validated; a nil f panics when the wait expires. A non-positive
// wait is passed as is to the clock, which for the real clock means f is
// invoked as soon as possible, in its own goroutine.
func NewDebouncer[A any](
	wait time.Duration,
	f func(A),
	opts ...Option,
) *Debouncer[A] {
	c := newConfig(opts)

	return &Debouncer[A]{
		wait:  wait,
		fn:    f,
		clock: c.clock,
		log:   c.logger,
	}
}

// Call cancels any pending invocation, stores arg, and schedules a new
// invocation after the wait duration. It returns immediately.
// This method is safe for concurrent use.
func (d *Debouncer[A]) Call(arg A) {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.arg = arg
	if d.timer.replace(d.clock, d.wait, d.fire) {
		d.log.Debug().Msg("superseded pending invocation")
	}
	d.log.Debug().Dur("wait", d.wait).Msg("scheduled invocation")
}

// Pending reports whether an invocation is scheduled but has not fired yet.
// This method is safe for concurrent use.
func (d *Debouncer[A]) Pending() bool {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.timer.pending()
}

// fire is called by the clock when the timer of generation gen expires. The
// function is invoked after the lock is released, so it may call the debouncer
// again.
func (d *Debouncer[A]) fire(gen uint64) {
	d.mux.Lock()
	if !d.timer.release(gen) {
		d.mux.Unlock()
		return
	}

	arg := d.arg
	var zero A
	d.arg = zero
	d.mux.Unlock()

	d.log.Debug().Msg("firing invocation")
	d.fn(arg)
}
