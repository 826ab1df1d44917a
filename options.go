package debounce

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Option is a function that can be used to configure the debounced function.
type Option func(*config)

// WithClock returns an option that schedules and cancels the delayed
// invocation on the given clock instead of the real wall clock.
//
// This is mostly useful in tests, where a clockwork.FakeClock allows advancing
// time deterministically. A nil clock keeps the default.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger returns an option that writes debug level traces to logger
// whenever an invocation is scheduled, superseded by a later call, or fired.
//
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
