package gamemath

import "time"

// MaxFrameDelta caps the wall-clock gap between two observed instants.
// A backgrounded tab or suspended process can produce arbitrarily large
// (or, after clock adjustment, negative) deltas; timers resume instead
// of instantly expiring.
const MaxFrameDelta = 250 * time.Millisecond

// Clock supplies the current time. Simulation code takes a Clock so
// cooldowns and countdowns are testable without real waits.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by time.Now.
func RealClock() Clock { return realClock{} }

// ClampDelta bounds a frame delta to [0, MaxFrameDelta].
func ClampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > MaxFrameDelta {
		return MaxFrameDelta
	}
	return d
}
