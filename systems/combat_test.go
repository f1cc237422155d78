package systems

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
)

func TestResolveHitDamagesLocalPlayer(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	attacker := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	if !rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{}) {
		t.Fatalf("first hit should be accepted")
	}
	events.ProcessAllEvents(rig.ecs.World)

	hp := components.Health.Get(rig.local)
	if hp.Current != cfg.Player.Health-10 {
		t.Fatalf("health = %d, want %d", hp.Current, cfg.Player.Health-10)
	}
	if !components.CombatState.Get(rig.local).IsInHitState {
		t.Fatalf("local player should be in hit state after taking damage")
	}
}

func TestResolveHitDebouncesLocalTarget(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	attacker := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{})
	events.ProcessAllEvents(rig.ecs.World)

	// A second hit inside the local cooldown window is discarded.
	rig.stepExact(cfg.Combat.LocalHitCooldown - time.Millisecond)
	if rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{}) {
		t.Fatalf("hit inside cooldown window should be discarded")
	}
	if hp := components.Health.Get(rig.local); hp.Current != cfg.Player.Health-10 {
		t.Fatalf("discarded hit changed health to %d", hp.Current)
	}

	// Just past the window it lands again, continuing the streak reset
	// (the gap exceeds the streak window).
	rig.stepExact(2 * time.Millisecond)
	if !rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{}) {
		t.Fatalf("hit after cooldown expiry should be accepted")
	}
}

func TestHitCooldownSurvivesLongPause(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	attacker := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{})
	events.ProcessAllEvents(rig.ecs.World)

	// A backgrounded client produces one huge frame delta; the world
	// clock absorbs it as a single clamped frame, so the cooldown
	// resumes instead of expiring across the pause.
	rig.clock.advance(time.Hour)
	rig.ecs.Update()

	if rig.sim.ResolveHit(attacker, rig.local, "tomato", 10, gamemath.Vec3{}) {
		t.Fatalf("hit right after a long pause should still be inside the cooldown")
	}
	if hp := components.Health.Get(rig.local); hp.Current != cfg.Player.Health-10 {
		t.Fatalf("paused frame changed health to %d", hp.Current)
	}
}

func TestResolveHitIgnoresDeadTarget(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	attacker := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	components.RemoveHealth(rig.ecs.World, rig.local, cfg.Player.Health)
	events.ProcessAllEvents(rig.ecs.World)
	if !components.CombatState.Get(rig.local).IsInDeathState {
		t.Fatalf("local player should be dead")
	}

	if rig.sim.ResolveHit(attacker, rig.local, "pie", 20, gamemath.Vec3{}) {
		t.Fatalf("hits on dead players must be rejected")
	}
}

func TestResolveHitStreakEscalates(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	target := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	var streaks []int
	components.HitLanded.Subscribe(rig.ecs.World, func(_ donburi.World, evt components.HitLandedEvent) {
		streaks = append(streaks, evt.Streak)
	})

	// Remote targets use the short debounce, so hits 500ms apart land
	// and stay inside the 2s streak window.
	for i := 0; i < 3; i++ {
		rig.sim.ResolveHit(rig.local, target, "egg", 12, gamemath.Vec3{})
		events.ProcessAllEvents(rig.ecs.World)
		rig.stepExact(500 * time.Millisecond)
	}

	if len(streaks) != 3 || streaks[0] != 1 || streaks[1] != 2 || streaks[2] != 3 {
		t.Fatalf("streaks = %v, want [1 2 3]", streaks)
	}
}

func TestHitLandedSpawnsSplat(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	target := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	rig.sim.ResolveHit(rig.local, target, "egg", 12, gamemath.Vec3{X: 5, Y: 1.5})
	events.ProcessAllEvents(rig.ecs.World)

	if n := countEntities(rig.ecs, components.SplatEffect); n != 1 {
		t.Fatalf("expected 1 splat effect, got %d", n)
	}
	if _, ok := components.HitMarker.First(rig.ecs.World); !ok {
		t.Fatalf("local attacker should get a hit marker")
	}
}

func TestDeathAttributesKill(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	killer := rig.addRemotePlayer("2", gamemath.Vec3{X: 5, Y: 2})
	rig.step()

	components.RemoveHealthFrom(rig.ecs.World, rig.local, cfg.Player.Health, "2")
	events.ProcessAllEvents(rig.ecs.World)

	if components.Player.Get(killer).Kills != 1 {
		t.Fatalf("killer should be credited with the kill")
	}
	if components.Player.Get(rig.local).Deaths != 1 {
		t.Fatalf("victim death count should increment")
	}
}
