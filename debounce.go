// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, file system events or window
// resizes, but the underlying operation only needs to be performed once per
// burst of calls.
//
// Every debounced function has at most one invocation pending at any time.
// Each call replaces the pending invocation, so when the wait finally expires
// the function is invoked with the arguments of the last call only. Debounced
// functions are fire-and-forget: there is nothing returned to the caller, and
// no way to cancel a pending invocation other than replacing it.
package debounce

import (
	"time"
)

// New returns a debounced function that delays invoking f until after wait time
// has elapsed since the last time the debounced function was invoked.
//
// The debounced function is safe for concurrent use in goroutines. It does not
// wait for f to complete, and f is invoked in its own goroutine, so f needs to
// be thread-safe as it may be invoked again before the previous invocation
// completes.
func New(wait time.Duration, f func(), opts ...Option) func() {
	d := NewDebouncer(wait, func(struct{}) { f() }, opts...)

	return func() {
		d.Call(struct{}{})
	}
}

// NewWithArg returns a debounced function like New, but which passes an
// argument through to f. Only the argument of the last call before wait
// expires is passed on; earlier arguments are discarded.
//
// Use a struct type for A to pass several values.
func NewWithArg[A any](
	wait time.Duration,
	f func(A),
	opts ...Option,
) func(A) {
	return NewDebouncer(wait, f, opts...).Call
}
