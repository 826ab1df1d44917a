package debounce

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	noop := func(uint64) {}

	var h handle
	assert.False(t, h.pending(), "zero value")
	assert.False(t, h.release(0), "release without timer")

	assert.False(t, h.replace(clock, time.Second, noop), "first replace")
	assert.True(t, h.pending())

	assert.True(t, h.replace(clock, time.Second, noop), "second replace")
	assert.True(t, h.pending())

	// The first timer's generation is stale once it has been replaced.
	assert.False(t, h.release(1))
	assert.True(t, h.pending())

	assert.True(t, h.release(2))
	assert.False(t, h.pending())

	assert.False(t, h.release(2), "released twice")
}

func TestHandle_replaceStopsPendingTimer(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 10)
	record := func(gen uint64) { fired <- gen }

	var h handle
	h.replace(clock, 100*time.Millisecond, record)
	clock.Advance(50 * time.Millisecond)
	h.replace(clock, 100*time.Millisecond, record)

	clock.Advance(51 * time.Millisecond)
	assertNoInvocation(t, fired)

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, uint64(2), receive(t, fired))
}
