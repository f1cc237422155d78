package systems

import (
	"testing"
	"time"

	"github.com/yohamta/donburi/features/events"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

func TestPlayerStandsOnFloorPlane(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	for i := 0; i < 30; i++ {
		rig.step()
	}

	tr := components.Transform.Get(rig.local)
	phys := components.Physics.Get(rig.local)
	if !phys.OnGround {
		t.Fatalf("player should be standing on the floor plane")
	}
	if tr.Position.Y != cfg.Player.EyeHeight {
		t.Fatalf("eye height = %v, want snap to %v", tr.Position.Y, cfg.Player.EyeHeight)
	}
	if components.CombatState.Get(rig.local).State != netconfig.Idle {
		t.Fatalf("grounded idle player state = %v", components.CombatState.Get(rig.local).State)
	}
}

func TestJumpAndLand(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	rig.step()

	in := components.Input.Get(rig.local)
	in.Current[netconfig.ActionJump] = true
	rig.step()
	in.Current[netconfig.ActionJump] = false

	phys := components.Physics.Get(rig.local)
	if phys.Velocity.Y != cfg.Player.JumpSpeed {
		t.Fatalf("jump velocity = %v, want %v", phys.Velocity.Y, cfg.Player.JumpSpeed)
	}
	if components.CombatState.Get(rig.local).State != netconfig.Jump {
		t.Fatalf("airborne state should be jump")
	}

	// The player comes back down and snaps to the floor.
	for i := 0; i < 120; i++ {
		rig.step()
	}
	if !phys.OnGround {
		t.Fatalf("player should land after a jump")
	}
	if got := components.Transform.Get(rig.local).Position.Y; got != cfg.Player.EyeHeight {
		t.Fatalf("landed eye height = %v, want %v", got, cfg.Player.EyeHeight)
	}
}

func TestWallBlocksMovement(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	rig.step()

	// Yaw 0 faces +Z; "move right" walks toward +X into the crate at x=2.
	in := components.Input.Get(rig.local)
	for i := 0; i < 200; i++ {
		in.Current[netconfig.ActionMoveRight] = true
		rig.step()
	}

	x := components.Transform.Get(rig.local).Position.X
	if x >= 1.6 {
		t.Fatalf("player walked into the crate, x = %v", x)
	}
	if x < 1.0 {
		t.Fatalf("player never approached the crate, x = %v", x)
	}
}

func TestHitStateExpires(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	rig.step()

	components.RemoveHealth(rig.ecs.World, rig.local, 10)
	events.ProcessAllEvents(rig.ecs.World)

	cs := components.CombatState.Get(rig.local)
	if !cs.IsInHitState {
		t.Fatalf("damage should start the hit state")
	}

	rig.stepFor(cfg.Player.HitStateDuration + 32*time.Millisecond)
	if cs.IsInHitState {
		t.Fatalf("hit state should expire after %v", cfg.Player.HitStateDuration)
	}
	if cs.State == netconfig.Hit {
		t.Fatalf("state should leave hit after expiry")
	}
}

func TestDeathBlocksInputUntilRespawn(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	rig.step()

	components.RemoveHealth(rig.ecs.World, rig.local, cfg.Player.Health)
	events.ProcessAllEvents(rig.ecs.World)

	cs := components.CombatState.Get(rig.local)
	if !cs.IsInDeathState {
		t.Fatalf("zero health should enter death state")
	}

	// Movement input is ignored while dead.
	start := components.Transform.Get(rig.local).Position
	in := components.Input.Get(rig.local)
	for i := 0; i < 10; i++ {
		in.Current[netconfig.ActionMoveForward] = true
		rig.step()
	}
	if got := components.Transform.Get(rig.local).Position; got.X != start.X || got.Z != start.Z {
		t.Fatalf("dead player moved from %+v to %+v", start, got)
	}
	in.Current[netconfig.ActionMoveForward] = false

	// After the countdown the player respawns alive and at full health.
	rig.stepFor(cfg.Player.RespawnCountdown)
	rig.step()
	if cs.IsInDeathState {
		t.Fatalf("respawn countdown elapsed but player still dead")
	}
	if hp := components.Health.Get(rig.local); hp.Current != cfg.Player.Health {
		t.Fatalf("respawned health = %d, want %d", hp.Current, cfg.Player.Health)
	}
}

func TestJumpGraceOneFrameAfterLeavingGround(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t, testLevel())
	for i := 0; i < 5; i++ {
		rig.step()
	}

	// Teleport off a ledge: no surface below within reach.
	tr := components.Transform.Get(rig.local)
	tr.Position = gamemath.Vec3{X: -30, Y: 10, Z: -30}

	phys := components.Physics.Get(rig.local)
	in := components.Input.Get(rig.local)

	// Frame 1 airborne: OnGround drops but WasOnGround still grants the jump.
	in.Current[netconfig.ActionJump] = true
	rig.step()
	if phys.Velocity.Y != cfg.Player.JumpSpeed {
		t.Fatalf("grace-frame jump should fire, velY = %v", phys.Velocity.Y)
	}
}
