package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// TickData is the simulation's view of time, written once per frame by
// the owning scene (or by a test). All timed behavior reads the frame's
// Now instead of calling time.Now, so a world can be stepped with any
// clock.
type TickData struct {
	Clock gamemath.Clock
	Now   time.Time
	Delta time.Duration
	Frame int64

	// last is the previous wall-clock sample. Deltas are measured
	// against it so a pause costs one clamped frame, not a catch-up.
	last time.Time
}

var Tick = donburi.NewComponentType[TickData]()

// Advance moves the tick forward by the clamped frame delta. Now tracks
// simulation time, not the wall clock: after a long pause it lags the
// clock by the excess, so cooldowns and countdowns resume instead of
// expiring across the gap.
func (t *TickData) Advance() {
	now := t.Clock.Now()
	if t.Now.IsZero() {
		t.Now = now
	}
	if t.last.IsZero() {
		t.last = t.Now
	}
	t.Delta = gamemath.ClampDelta(now.Sub(t.last))
	t.last = now
	t.Now = t.Now.Add(t.Delta)
	t.Frame++
}

// Now returns the frame timestamp for the world, or the zero time when
// no tick entity exists.
func Now(w donburi.World) time.Time {
	entry, ok := Tick.First(w)
	if !ok {
		return time.Time{}
	}
	return Tick.Get(entry).Now
}
