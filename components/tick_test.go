package components

import (
	"testing"
	"time"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time { return s.now }

func TestTickAdvancesByFrameDelta(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.UnixMilli(1_000_000)}
	tick := TickData{Clock: clock, Now: clock.now}

	clock.now = clock.now.Add(16 * time.Millisecond)
	tick.Advance()

	if tick.Delta != 16*time.Millisecond {
		t.Fatalf("Delta = %v, want 16ms", tick.Delta)
	}
	if !tick.Now.Equal(time.UnixMilli(1_000_016)) {
		t.Fatalf("Now = %v, want clock time", tick.Now)
	}
	if tick.Frame != 1 {
		t.Fatalf("Frame = %d, want 1", tick.Frame)
	}
}

func TestTickPauseCostsOneClampedFrame(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.UnixMilli(1_000_000)}
	tick := TickData{Clock: clock, Now: clock.now}

	clock.now = clock.now.Add(16 * time.Millisecond)
	tick.Advance()
	before := tick.Now

	// An hour in the background arrives as a single frame.
	clock.now = clock.now.Add(time.Hour)
	tick.Advance()

	if tick.Delta != gamemath.MaxFrameDelta {
		t.Fatalf("Delta = %v, want the clamp %v", tick.Delta, gamemath.MaxFrameDelta)
	}
	if got := tick.Now.Sub(before); got != gamemath.MaxFrameDelta {
		t.Fatalf("Now advanced %v across the pause, want %v", got, gamemath.MaxFrameDelta)
	}

	// The next frame is measured against the wall clock again, not
	// against the lagging simulation time.
	clock.now = clock.now.Add(16 * time.Millisecond)
	tick.Advance()
	if tick.Delta != 16*time.Millisecond {
		t.Fatalf("post-pause Delta = %v, want 16ms", tick.Delta)
	}
}

func TestTickIgnoresBackwardsClock(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.UnixMilli(1_000_000)}
	tick := TickData{Clock: clock, Now: clock.now}

	clock.now = clock.now.Add(16 * time.Millisecond)
	tick.Advance()
	before := tick.Now

	clock.now = clock.now.Add(-time.Second)
	tick.Advance()

	if tick.Delta != 0 {
		t.Fatalf("Delta = %v on a backwards clock, want 0", tick.Delta)
	}
	if !tick.Now.Equal(before) {
		t.Fatalf("Now moved on a backwards clock: %v -> %v", before, tick.Now)
	}
}
