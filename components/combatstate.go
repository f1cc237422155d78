package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/netconfig"
)

// CombatStateData is the character state machine. Idle/Walk/Jump are
// freely interchangeable each frame; Hit is a timed side channel that
// blocks movement input; Death is sticky and only a respawn resets it.
type CombatStateData struct {
	State netconfig.StateID

	IsInHitState      bool
	HitStateStart     time.Time
	IsInDeathState    bool
	DeathStateStart   time.Time

	// LockoutUntil gates throw/consume animations: no new throw or
	// consume starts before this instant.
	LockoutUntil time.Time

	// RespawnCountdown is how long the death state lasts.
	RespawnCountdown time.Duration
}

var CombatState = donburi.NewComponentType[CombatStateData]()

// SetState writes a new state, refusing any write while dead. The death
// guard can only be cleared by ResetForRespawn.
func (c *CombatStateData) SetState(s netconfig.StateID) bool {
	if c.IsInDeathState {
		return false
	}
	c.State = s
	return true
}

// EnterHit starts the transient hit state. Ignored while already in hit
// or death.
func (c *CombatStateData) EnterHit(now time.Time) bool {
	if c.IsInDeathState || c.IsInHitState {
		return false
	}
	c.IsInHitState = true
	c.HitStateStart = now
	c.State = netconfig.Hit
	return true
}

// ExitHit clears the hit state, reverting to idle.
func (c *CombatStateData) ExitHit() {
	if !c.IsInHitState {
		return
	}
	c.IsInHitState = false
	if !c.IsInDeathState {
		c.State = netconfig.Idle
	}
}

// EnterDeath starts the death sequence. Re-entrant calls while already
// dead are ignored.
func (c *CombatStateData) EnterDeath(now time.Time) bool {
	if c.IsInDeathState {
		return false
	}
	c.IsInDeathState = true
	c.DeathStateStart = now
	c.IsInHitState = false
	c.State = netconfig.Death
	return true
}

// RespawnReady reports whether the respawn countdown has elapsed.
func (c *CombatStateData) RespawnReady(now time.Time) bool {
	return c.IsInDeathState && now.Sub(c.DeathStateStart) >= c.RespawnCountdown
}

// ResetForRespawn clears death and hit state and returns to idle. This
// is the only way out of the death state.
func (c *CombatStateData) ResetForRespawn() {
	c.IsInDeathState = false
	c.IsInHitState = false
	c.LockoutUntil = time.Time{}
	c.State = netconfig.Idle
}

// InputBlocked reports whether movement/combat input should be ignored.
func (c *CombatStateData) InputBlocked() bool {
	return c.IsInDeathState || c.IsInHitState
}

// ActionLocked reports whether a throw/consume is still animating.
func (c *CombatStateData) ActionLocked(now time.Time) bool {
	return now.Before(c.LockoutUntil)
}
