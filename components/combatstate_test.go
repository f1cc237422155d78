package components

import (
	"testing"
	"time"

	"github.com/carllapierre/foodfight/shared/netconfig"
)

func TestDeathStateIsSticky(t *testing.T) {
	t.Parallel()

	cs := &CombatStateData{State: netconfig.Idle, RespawnCountdown: 5 * time.Second}
	now := time.UnixMilli(0)

	if !cs.EnterDeath(now) {
		t.Fatalf("first EnterDeath should succeed")
	}
	if cs.EnterDeath(now.Add(time.Second)) {
		t.Fatalf("re-entrant EnterDeath should be ignored")
	}
	if cs.SetState(netconfig.Walk) {
		t.Fatalf("state writes while dead should be rejected")
	}
	if cs.EnterHit(now) {
		t.Fatalf("hit state while dead should be rejected")
	}
	if cs.State != netconfig.Death {
		t.Fatalf("state = %v, want death", cs.State)
	}
}

func TestRespawnCountdownAndReset(t *testing.T) {
	t.Parallel()

	cs := &CombatStateData{State: netconfig.Idle, RespawnCountdown: 5 * time.Second}
	t0 := time.UnixMilli(0)
	cs.EnterDeath(t0)

	if cs.RespawnReady(t0.Add(4999 * time.Millisecond)) {
		t.Fatalf("respawn should not be ready before the countdown elapses")
	}
	if !cs.RespawnReady(t0.Add(5 * time.Second)) {
		t.Fatalf("respawn should be ready at the countdown boundary")
	}

	cs.ResetForRespawn()
	if cs.IsInDeathState || cs.State != netconfig.Idle {
		t.Fatalf("reset should return to idle, got %+v", cs)
	}
	if !cs.SetState(netconfig.Walk) {
		t.Fatalf("state writes should work again after respawn")
	}
}

func TestHitStateIsTransientAndNonReentrant(t *testing.T) {
	t.Parallel()

	cs := &CombatStateData{State: netconfig.Walk}
	now := time.UnixMilli(0)

	if !cs.EnterHit(now) {
		t.Fatalf("EnterHit should succeed from walk")
	}
	if cs.EnterHit(now.Add(10 * time.Millisecond)) {
		t.Fatalf("EnterHit while already hit should be ignored")
	}
	if !cs.InputBlocked() {
		t.Fatalf("input should be blocked during hit state")
	}

	cs.ExitHit()
	if cs.State != netconfig.Idle || cs.IsInHitState {
		t.Fatalf("ExitHit should revert to idle, got %+v", cs)
	}
}

func TestJumpGraceFlag(t *testing.T) {
	t.Parallel()

	p := &PhysicsData{OnGround: true}
	if !p.CanJump() {
		t.Fatalf("grounded player should be able to jump")
	}

	// Frame N+1: airborne, but grounded last frame.
	p.WasOnGround = p.OnGround
	p.OnGround = false
	if !p.CanJump() {
		t.Fatalf("jump grace should hold for one frame after leaving ground")
	}

	// Frame N+2: grace expired.
	p.WasOnGround = p.OnGround
	if p.CanJump() {
		t.Fatalf("jump grace should expire after one airborne frame")
	}
}
