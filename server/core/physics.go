package core

import (
	"math"
	"sync"
	"time"

	"github.com/carllapierre/foodfight/collision"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/leveldata"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netcomponents"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

// playerPhysics is the server-only movement state for one player. It is
// not a donburi component and is never synced; the tick writes its
// results into the player's net components.
//
// Each player gets its own collision probe: the probe carries
// surface-memory hysteresis that must not bleed between players.
type playerPhysics struct {
	mu    sync.Mutex
	input messages.PlayerInput // latest input, written by the router

	probe *collision.Probe
	pos   gamemath.Vec3 // eye position
	vel   gamemath.Vec3
	yaw   float64

	onGround    bool
	wasOnGround bool
	prevJump    bool

	// Combat bookkeeping, written by router callbacks under mu.
	dead         bool
	respawnDue   time.Time
	lastHitAt    time.Time
	hitLockUntil time.Time
	throwUntil   time.Time
}

func newPlayerPhysics(level *leveldata.World, spawn leveldata.SpawnPoint) *playerPhysics {
	return &playerPhysics{
		probe: collision.NewProbe(level.CollidableBounds(), cfg.Player.CollisionRadius, cfg.Player.EyeHeight),
		pos: gamemath.Vec3{
			X: spawn.Position.X,
			Y: spawn.Position.Y + cfg.Player.EyeHeight,
			Z: spawn.Position.Z,
		},
		yaw: spawn.Yaw,
	}
}

// tick advances the authoritative simulation by one server tick:
// respawns that came due, sub-stepped player movement, and the write
// back into the synced components.
func (s *Server) tick(now time.Time) {
	s.respawnDuePlayers(now)

	// Sub-stepping keeps the 60 Hz movement constants correct at the
	// lower server tick rate.
	stepsPerTick := 60 / s.loop.tickRate
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}

	s.mu.RLock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	for _, sess := range sessions {
		if !s.world.Valid(sess.entity) {
			continue
		}
		pp := sess.phys

		pp.mu.Lock()
		input := pp.input
		dead := pp.dead
		hitLock := pp.hitLockUntil
		throwLock := pp.throwUntil
		pp.mu.Unlock()

		if !dead {
			for step := 0; step < stepsPerTick; step++ {
				stepPlayerPhysics(pp, input, now)
			}
		}

		entry := s.world.Entry(sess.entity)
		pos := netcomponents.NetPosition.Get(entry)
		vel := netcomponents.NetVelocity.Get(entry)
		state := netcomponents.NetPlayerState.Get(entry)

		pos.X, pos.Y, pos.Z = pp.pos.X, pp.pos.Y, pp.pos.Z
		vel.X, vel.Y, vel.Z = pp.vel.X, pp.vel.Y, pp.vel.Z
		state.Yaw = pp.yaw
		state.LastSequence = input.Sequence

		switch {
		case dead:
			state.StateID = netconfig.Death
		case now.Before(hitLock):
			state.StateID = netconfig.Hit
		case now.Before(throwLock):
			state.StateID = netconfig.Throw
		default:
			state.StateID = derivePlayerState(pp, input)
		}
	}
}

// stepPlayerPhysics runs one 60 Hz movement sub-step, mirroring the
// client's character system so prediction and authority agree.
func stepPlayerPhysics(pp *playerPhysics, input messages.PlayerInput, now time.Time) {
	pp.yaw = input.Yaw

	// Vertical motion and ground snap.
	pp.vel.Y -= cfg.Player.Gravity
	if pp.vel.Y < -cfg.Player.MaxFallSpeed {
		pp.vel.Y = -cfg.Player.MaxFallSpeed
	}
	candidate := pp.pos
	candidate.Y += pp.vel.Y

	standing, surfaceY := pp.probe.CheckStandingOnObject(candidate, now)
	if standing && pp.vel.Y <= 0 {
		candidate.Y = surfaceY + pp.probe.SnapHeight
		pp.vel.Y = 0
		pp.onGround = true
	} else {
		pp.onGround = false
	}
	pp.pos.Y = candidate.Y

	// Jump: edge-triggered, with the same one-frame grace the client has.
	jump := input.Actions[netconfig.ActionJump]
	if jump && !pp.prevJump && (pp.onGround || pp.wasOnGround) {
		pp.vel.Y = cfg.Player.JumpSpeed
		pp.onGround = false
	}
	pp.prevJump = jump

	// Speculative horizontal move, rejected whole on contact.
	move := inputMoveVector(input)
	if move.X != 0 || move.Z != 0 {
		next := pp.pos
		next.X += move.X * cfg.Player.MoveSpeed
		next.Z += move.Z * cfg.Player.MoveSpeed
		falling := pp.vel.Y < 0 && !pp.onGround
		if !pp.probe.CheckCollision(next, falling) {
			pp.pos.X = next.X
			pp.pos.Z = next.Z
		}
	}

	pp.wasOnGround = pp.onGround
}

// inputMoveVector builds the normalized XZ movement direction from the
// held movement actions, relative to the reported yaw.
func inputMoveVector(input messages.PlayerInput) gamemath.Vec3 {
	forward := gamemath.Vec3{X: math.Sin(input.Yaw), Z: math.Cos(input.Yaw)}
	right := gamemath.Vec3{X: math.Cos(input.Yaw), Z: -math.Sin(input.Yaw)}

	var move gamemath.Vec3
	if input.Actions[netconfig.ActionMoveForward] {
		move = move.Add(forward)
	}
	if input.Actions[netconfig.ActionMoveBack] {
		move = move.Sub(forward)
	}
	if input.Actions[netconfig.ActionMoveRight] {
		move = move.Add(right)
	}
	if input.Actions[netconfig.ActionMoveLeft] {
		move = move.Sub(right)
	}
	if move.X == 0 && move.Z == 0 {
		return move
	}
	return move.Normalized()
}

func derivePlayerState(pp *playerPhysics, input messages.PlayerInput) netconfig.StateID {
	switch {
	case !pp.onGround:
		return netconfig.Jump
	case inputMoveVector(input) != (gamemath.Vec3{}):
		return netconfig.Walk
	default:
		return netconfig.Idle
	}
}
