package debounce

import (
	"time"
)

// NewMutable returns a debounced function like New, but it allows callback
// function f to be changed, as a new callback function is passed to each
// invocation of the debounced function.
//
// Only the very last f passed to the debounced function is called when the
// delay expires and the callback function is invoked. Previous f values are
// discarded. Passing a nil f panics once the delay expires.
//
// The debounced function is safe for concurrent use in goroutines.
func NewMutable(wait time.Duration, opts ...Option) func(f func()) {
	return NewWithArg(wait, func(f func()) { f() }, opts...)
}
