package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// HealthChangedEvent fires whenever a health value actually changes.
type HealthChangedEvent struct {
	Entry *donburi.Entry
	Old   int
	New   int
}

// PlayerDiedEvent fires exactly once when health crosses to zero.
type PlayerDiedEvent struct {
	Entry    *donburi.Entry
	KillerID string
}

// PlayerRespawnedEvent fires when a dead player is reset.
type PlayerRespawnedEvent struct {
	Entry *donburi.Entry
}

// HitLandedEvent fires when the combat resolver accepts a hit.
type HitLandedEvent struct {
	AttackerID string
	TargetID   string
	ItemType   string
	Damage     int
	Streak     int
	Position   gamemath.Vec3
}

var (
	HealthChanged   = events.NewEventType[HealthChangedEvent]()
	PlayerDied      = events.NewEventType[PlayerDiedEvent]()
	PlayerRespawned = events.NewEventType[PlayerRespawnedEvent]()
	HitLanded       = events.NewEventType[HitLandedEvent]()
)
