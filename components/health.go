package components

import (
	"github.com/yohamta/donburi"
)

// HealthData is a bounded health value. All mutation goes through the
// package helpers, which clamp to [0, Max] and publish HealthChanged
// only when the value actually moves.
type HealthData struct {
	Current int
	Max     int

	// respawnReset is a one-shot flag armed by ArmRespawnReset that lets
	// the next SetHealth bypass the death-state guard.
	respawnReset bool
}

var Health = donburi.NewComponentType[HealthData]()

// NewHealthData returns a full health pool.
func NewHealthData(max int) HealthData {
	return HealthData{Current: max, Max: max}
}

func clampHealth(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func inDeathState(e *donburi.Entry) bool {
	if !e.HasComponent(CombatState) {
		return false
	}
	return CombatState.Get(e).IsInDeathState
}

// AddHealth increases health by amount, clamped to Max. No-op while the
// owner is dead or for non-positive amounts.
func AddHealth(w donburi.World, e *donburi.Entry, amount int) int {
	hp := Health.Get(e)
	if amount <= 0 || inDeathState(e) {
		return hp.Current
	}
	old := hp.Current
	hp.Current = clampHealth(old+amount, hp.Max)
	if hp.Current != old {
		HealthChanged.Publish(w, HealthChangedEvent{Entry: e, Old: old, New: hp.Current})
	}
	return hp.Current
}

// RemoveHealth decreases health by amount, clamped to 0. Crossing to
// zero publishes PlayerDied exactly once (the death-state guard in
// CombatState keeps later calls from re-firing it).
func RemoveHealth(w donburi.World, e *donburi.Entry, amount int) int {
	return RemoveHealthFrom(w, e, amount, "")
}

// RemoveHealthFrom is RemoveHealth with kill attribution.
func RemoveHealthFrom(w donburi.World, e *donburi.Entry, amount int, attackerID string) int {
	hp := Health.Get(e)
	if amount <= 0 || inDeathState(e) {
		return hp.Current
	}
	old := hp.Current
	hp.Current = clampHealth(old-amount, hp.Max)
	if hp.Current == old {
		return hp.Current
	}
	HealthChanged.Publish(w, HealthChangedEvent{Entry: e, Old: old, New: hp.Current})
	if old > 0 && hp.Current == 0 {
		PlayerDied.Publish(w, PlayerDiedEvent{Entry: e, KillerID: attackerID})
	}
	return hp.Current
}

// SetHealth is an authoritative overwrite (e.g. from the network),
// clamped to [0, Max]. Rejected while dead unless a respawn reset was
// armed; the flag clears after a single use either way.
func SetHealth(w donburi.World, e *donburi.Entry, amount int) int {
	hp := Health.Get(e)
	bypass := hp.respawnReset
	hp.respawnReset = false

	if inDeathState(e) && !bypass {
		return hp.Current
	}

	old := hp.Current
	hp.Current = clampHealth(amount, hp.Max)
	if hp.Current == old {
		return hp.Current
	}
	HealthChanged.Publish(w, HealthChangedEvent{Entry: e, Old: old, New: hp.Current})
	if old > 0 && hp.Current == 0 {
		PlayerDied.Publish(w, PlayerDiedEvent{Entry: e})
	}
	return hp.Current
}

// ArmRespawnReset lets the next SetHealth succeed despite the death
// state. Used only by the respawn operation.
func ArmRespawnReset(e *donburi.Entry) {
	Health.Get(e).respawnReset = true
}
