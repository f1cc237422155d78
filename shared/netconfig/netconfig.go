// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies a character state for logic and animation.
type StateID int

const StateNone StateID = -1

const (
	Idle StateID = iota
	Walk
	Jump
	Hit
	Death
	Throw
	Consume
)

var stateNames = map[StateID]string{
	Idle:    "idle",
	Walk:    "walk",
	Jump:    "jump",
	Hit:     "hit",
	Death:   "death",
	Throw:   "throw",
	Consume: "consume",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ProjectileState tracks a projectile through its lifetime:
// spawned -> flying -> {hit, expired}. Once a projectile leaves Flying
// it is never simulated again.
type ProjectileState int

const (
	ProjectileSpawned ProjectileState = iota
	ProjectileFlying
	ProjectileHit
	ProjectileExpired
)

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionThrow
	ActionConsume
	ActionNextItem
	ActionPrevItem
	ActionPause
	ActionCount // Must be last - used for array sizing
)
