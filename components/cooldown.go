package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// HitCooldownEntry tracks hit bookkeeping against one target. Entries
// live for the whole session, keyed by target identity.
type HitCooldownEntry struct {
	TargetID         string
	CooldownExpiry   time.Time
	ConsecutiveCount int
	LastHitTimestamp time.Time
}

// HitCooldownData is the per-attacker cooldown ledger.
type HitCooldownData struct {
	Entries map[string]*HitCooldownEntry
}

var HitCooldown = donburi.NewComponentType[HitCooldownData]()

// NewHitCooldownData returns an empty ledger.
func NewHitCooldownData() HitCooldownData {
	return HitCooldownData{Entries: make(map[string]*HitCooldownEntry)}
}

// Accept applies the debounce and streak rules for a hit on targetID at
// now. If the target is still inside its cooldown window the hit is
// discarded (accepted=false, no state change). Otherwise the streak
// increments when the gap since the previous accepted hit is within
// streakWindow and resets to 1 when it is not, and a new cooldown expiry
// of now+cooldown is recorded.
func (h *HitCooldownData) Accept(targetID string, now time.Time, cooldown, streakWindow time.Duration) (streak int, accepted bool) {
	if h.Entries == nil {
		h.Entries = make(map[string]*HitCooldownEntry)
	}

	entry, ok := h.Entries[targetID]
	if !ok {
		entry = &HitCooldownEntry{TargetID: targetID}
		h.Entries[targetID] = entry
	}

	if now.Before(entry.CooldownExpiry) {
		return entry.ConsecutiveCount, false
	}

	if !entry.LastHitTimestamp.IsZero() && now.Sub(entry.LastHitTimestamp) < streakWindow {
		entry.ConsecutiveCount++
	} else {
		entry.ConsecutiveCount = 1
	}

	entry.LastHitTimestamp = now
	entry.CooldownExpiry = now.Add(cooldown)
	return entry.ConsecutiveCount, true
}

// Streak returns the current consecutive-hit count against a target.
func (h *HitCooldownData) Streak(targetID string) int {
	if entry, ok := h.Entries[targetID]; ok {
		return entry.ConsecutiveCount
	}
	return 0
}
