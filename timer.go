package debounce

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// handle tracks the single pending timer of a debouncer. The zero value has no
// timer pending. It is not safe for concurrent use; callers hold their own
// lock.
type handle struct {
	timer clockwork.Timer
	gen   uint64
}

// replace stops the pending timer, if any, and schedules f to run on clock
// after wait. f receives the generation of the timer that fired it, which must
// be passed to release. It reports whether a pending timer was superseded.
func (h *handle) replace(
	clock clockwork.Clock,
	wait time.Duration,
	f func(gen uint64),
) (superseded bool) {
	if h.timer != nil {
		// Stop returns false if the timer already expired, but its callback
		// has not released the handle yet. That callback is still superseded,
		// as release will see a newer generation.
		h.timer.Stop()
		superseded = true
	}

	h.gen++
	gen := h.gen
	h.timer = clock.AfterFunc(wait, func() { f(gen) })

	return superseded
}

// release clears the handle if gen belongs to the pending timer, and reports
// whether it did. A false return means the timer was superseded after it
// expired, and its callback must not invoke anything.
func (h *handle) release(gen uint64) bool {
	if h.timer == nil || gen != h.gen {
		return false
	}

	h.timer = nil

	return true
}

func (h *handle) pending() bool {
	return h.timer != nil
}
