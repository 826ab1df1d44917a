package debounce

import (
	"time"
)

// NewWithArgs returns a debounced function like NewWithArg, for functions
// taking a variadic argument list. The arguments of each call are copied, so
// modifying a slice after passing it with args... does not change what f is
// eventually invoked with.
func NewWithArgs[A any](
	wait time.Duration,
	f func(...A),
	opts ...Option,
) func(...A) {
	d := NewDebouncer(wait, func(args []A) { f(args...) }, opts...)

	return func(args ...A) {
		d.Call(append([]A(nil), args...))
	}
}

type receiverCall[R, A any] struct {
	recv R
	arg  A
}

// NewWithReceiver returns a debounced function for f taking a receiver and an
// argument, which is the shape of a method expression such as (*T).Method.
//
// The receiver is captured per call along with the argument, so f is invoked
// on the receiver of the last call. To debounce a method of a single known
// value, pass the method value (v.Method) to New or NewWithArg instead.
func NewWithReceiver[R, A any](
	wait time.Duration,
	f func(R, A),
	opts ...Option,
) func(R, A) {
	d := NewDebouncer(
		wait,
		func(c receiverCall[R, A]) { f(c.recv, c.arg) },
		opts...,
	)

	return func(recv R, arg A) {
		d.Call(receiverCall[R, A]{recv: recv, arg: arg})
	}
}
