package collision

import (
	"testing"
	"time"

	"github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
)

func crate(x, z float64) gamemath.AABB {
	return gamemath.AABB{
		Min: gamemath.Vec3{X: x - 1, Y: 0, Z: z - 1},
		Max: gamemath.Vec3{X: x + 1, Y: 2, Z: z + 1},
	}
}

func newTestProbe(bounds ...gamemath.AABB) *Probe {
	return NewProbe(bounds, config.Player.CollisionRadius, config.Player.EyeHeight)
}

func TestCheckCollisionRejectsWallContact(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(3, 0))

	// Standing right next to the crate face at x=2: body ray along +X
	// hits within 0.9 × radius.
	if !p.CheckCollision(gamemath.Vec3{X: 2.2, Y: 2, Z: 0}, false) {
		t.Fatalf("position touching the crate should collide")
	}

	// Well clear of the crate.
	if p.CheckCollision(gamemath.Vec3{X: -3, Y: 2, Z: 0}, false) {
		t.Fatalf("position far from the crate should not collide")
	}
}

func TestCheckCollisionToleranceBoundary(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(3, 0))
	tolerance := config.Probe.HitToleranceFactor * config.Player.CollisionRadius // 0.45

	// Crate face is at x=2. Just outside tolerance: no hit.
	if p.CheckCollision(gamemath.Vec3{X: 2 - tolerance - 0.01, Y: 2, Z: 0}, false) {
		t.Fatalf("position just outside tolerance should pass")
	}
	// Just inside: hit.
	if !p.CheckCollision(gamemath.Vec3{X: 2 - tolerance + 0.01, Y: 2, Z: 0}, false) {
		t.Fatalf("position just inside tolerance should collide")
	}
}

func TestStandingOnCrateAndFloor(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(0, 0))
	now := time.UnixMilli(0)

	// Eye at crate top (y=2) + eye height.
	standing, surfaceY := p.CheckStandingOnObject(gamemath.Vec3{X: 0, Y: 2 + config.Player.EyeHeight, Z: 0}, now)
	if !standing {
		t.Fatalf("player on crate top should be standing")
	}
	if surfaceY != 2 {
		t.Fatalf("surfaceY = %v, want 2", surfaceY)
	}

	// On the bare floor away from the crate.
	standing, surfaceY = p.CheckStandingOnObject(gamemath.Vec3{X: 10, Y: config.Player.EyeHeight, Z: 10}, now)
	if !standing {
		t.Fatalf("player on the floor plane should be standing")
	}
	if surfaceY != 0 {
		t.Fatalf("floor surfaceY = %v, want 0", surfaceY)
	}

	// High in the air: nothing within 2.05 units.
	standing, _ = p.CheckStandingOnObject(gamemath.Vec3{X: 10, Y: 8, Z: 10}, now.Add(time.Second))
	if standing {
		t.Fatalf("airborne player should not be standing")
	}
}

func TestStandingOffsetRaysCatchLedges(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(0, 0))
	now := time.UnixMilli(0)

	// Center ray is past the crate edge (x=1) but an offset ray
	// (0.4 × radius = 0.2) still reaches it.
	standing, _ := p.CheckStandingOnObject(gamemath.Vec3{X: 1.1, Y: 2 + config.Player.EyeHeight, Z: 0}, now)
	if !standing {
		t.Fatalf("offset ray should still find the crate edge")
	}

	// Clearly past all five rays.
	standing, _ = p.CheckStandingOnObject(gamemath.Vec3{X: 1.5, Y: 2 + config.Player.EyeHeight, Z: 0}, now.Add(time.Second))
	if standing {
		t.Fatalf("player past the ledge should not be standing")
	}
}

func TestSurfaceMemoryHysteresis(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(0, 0))
	t0 := time.UnixMilli(0)
	eye := 2 + config.Player.EyeHeight

	// Establish the surface.
	if standing, _ := p.CheckStandingOnObject(gamemath.Vec3{X: 0, Y: eye, Z: 0}, t0); !standing {
		t.Fatalf("setup: should be standing on the crate")
	}

	// Step just past the edge within 100ms at the same height: memory
	// keeps the player standing.
	past := gamemath.Vec3{X: 1.5, Y: eye, Z: 0}
	if standing, _ := p.CheckStandingOnObject(past, t0.Add(50*time.Millisecond)); !standing {
		t.Fatalf("surface memory should suppress the edge jitter")
	}

	// Same spot after the window expires: falling.
	if standing, _ := p.CheckStandingOnObject(past, t0.Add(151*time.Millisecond)); standing {
		t.Fatalf("surface memory should expire after 100ms")
	}
}

func TestSurfaceMemoryHeightGate(t *testing.T) {
	t.Parallel()

	p := newTestProbe(crate(0, 0))
	t0 := time.UnixMilli(0)
	eye := 2 + config.Player.EyeHeight

	if standing, _ := p.CheckStandingOnObject(gamemath.Vec3{X: 0, Y: eye, Z: 0}, t0); !standing {
		t.Fatalf("setup: should be standing on the crate")
	}

	// Within the window but dropped more than 0.1 units: memory must
	// not apply.
	dropped := gamemath.Vec3{X: 1.5, Y: eye - 0.3, Z: 0}
	if standing, _ := p.CheckStandingOnObject(dropped, t0.Add(50*time.Millisecond)); standing {
		t.Fatalf("memory should not hold a player who has fallen away from the surface")
	}
}
