package debounce

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type config struct {
	clock  clockwork.Clock
	logger zerolog.Logger
}

// newConfig returns a config with opts applied over the defaults. Each
// constructor builds its own config, so option slices can be shared between
// debounced functions without them affecting each other.
func newConfig(opts []Option) config {
	c := config{
		clock:  clockwork.NewRealClock(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}

	return c
}
