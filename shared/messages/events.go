package messages

import "github.com/carllapierre/foodfight/shared/gamemath"

// ProjectileThrowEvent is sent when a player throws a food item, and
// broadcast so other clients spawn a networked projectile.
type ProjectileThrowEvent struct {
	OwnerNetworkID uint
	ItemType       string
	Origin         gamemath.Vec3
	Velocity       gamemath.Vec3
	Scale          float64
	Damage         int
}

// PlayerHitEvent is the damage report a client sends when one of its
// projectiles hits a remote player. The server is authoritative: it
// validates, applies damage and broadcasts the result.
type PlayerHitEvent struct {
	AttackerNetworkID uint
	TargetNetworkID   uint
	ItemType          string
	Damage            int
	HitCount          int // consecutive-hit streak, for visual scaling
	Position          gamemath.Vec3
}

// HealthUpdateEvent carries authoritative health from the server.
type HealthUpdateEvent struct {
	NetworkID uint
	Health    int
}

// PlayerStateEvent announces a character state change (hit, death,
// throw animation) for remote replication.
type PlayerStateEvent struct {
	NetworkID uint
	StateID   int
}

// DeathEvent is broadcast when a player dies.
type DeathEvent struct {
	VictimNetworkID uint
	KillerNetworkID uint // 0 when environmental
}

// KillAttributionEvent credits a kill to a player.
type KillAttributionEvent struct {
	KillerNetworkID uint
}

// RespawnEvent is broadcast when a dead player respawns.
type RespawnEvent struct {
	NetworkID uint
	Position  gamemath.Vec3
}

// ConsumeEvent is sent when a player eats a held food item.
type ConsumeEvent struct {
	NetworkID uint
	ItemType  string
}

// ScoreUpdateEvent is broadcast when kill/death tallies change.
type ScoreUpdateEvent struct {
	Kills  map[uint]int
	Deaths map[uint]int
}

// WorldSaveRequest asks the server to persist the world data (editor
// backend flow). The server writes a backup of the previous file first.
type WorldSaveRequest struct {
	WorldJSON []byte
}

// WorldSaveResult reports the outcome of a WorldSaveRequest.
type WorldSaveResult struct {
	OK     bool
	Reason string
}
