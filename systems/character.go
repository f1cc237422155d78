package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

const maxPitch = math.Pi/2 - 0.05

// UpdateCharacters runs the local player's state machine and movement:
// timed hit/death transitions, look, gravity and ground snapping, jump
// with a one-frame grace, and speculative horizontal movement rejected
// by the collision probe.
func (s *Simulation) UpdateCharacters(e *ecs.ECS) {
	now := components.Now(e.World)

	localPlayerQuery.Each(e.World, func(entry *donburi.Entry) {
		if !components.Player.Get(entry).IsLocal {
			return
		}

		cs := components.CombatState.Get(entry)
		tr := components.Transform.Get(entry)
		phys := components.Physics.Get(entry)
		in := components.Input.Get(entry)

		if cs.IsInHitState && now.Sub(cs.HitStateStart) >= cfg.Player.HitStateDuration {
			cs.ExitHit()
		}

		if cs.IsInDeathState {
			if cs.RespawnReady(now) {
				s.respawn(entry)
			}
			phys.WasOnGround = phys.OnGround
			return
		}

		tr.Yaw += in.YawDelta
		tr.Pitch = clampPitch(tr.Pitch + in.PitchDelta)

		// Vertical motion and ground snap.
		phys.Velocity.Y -= cfg.Player.Gravity
		if phys.Velocity.Y < -cfg.Player.MaxFallSpeed {
			phys.Velocity.Y = -cfg.Player.MaxFallSpeed
		}
		candidate := tr.Position
		candidate.Y += phys.Velocity.Y

		standing, surfaceY := s.Probe.CheckStandingOnObject(candidate, now)
		if standing && phys.Velocity.Y <= 0 {
			candidate.Y = surfaceY + s.Probe.SnapHeight
			phys.Velocity.Y = 0
			phys.OnGround = true
			phys.SurfaceY = surfaceY
		} else {
			phys.OnGround = false
		}
		tr.Position.Y = candidate.Y

		// Jump, honoring last frame's grounding as grace.
		if !cs.InputBlocked() && in.JustPressed(netconfig.ActionJump) && phys.CanJump() {
			phys.Velocity.Y = cfg.Player.JumpSpeed
			phys.OnGround = false
			s.playCue("jump")
		}

		// Speculative horizontal move: try it, keep it only if the probe
		// finds no contact. No sliding, the move is simply rejected.
		move := moveVector(in, tr.Yaw)
		moving := move.X != 0 || move.Z != 0
		if !cs.InputBlocked() && moving {
			next := tr.Position
			next.X += move.X * cfg.Player.MoveSpeed
			next.Z += move.Z * cfg.Player.MoveSpeed
			falling := phys.Velocity.Y < 0 && !phys.OnGround
			if !s.Probe.CheckCollision(next, falling) {
				tr.Position.X = next.X
				tr.Position.Z = next.Z
			}
		}

		if !cs.IsInHitState {
			switch {
			case !phys.OnGround:
				cs.SetState(netconfig.Jump)
			case moving:
				cs.SetState(netconfig.Walk)
			default:
				cs.SetState(netconfig.Idle)
			}
		}
		s.announceState(cs.State)

		phys.WasOnGround = phys.OnGround
	})
}

// moveVector builds the normalized XZ movement direction from the held
// movement actions, relative to the view yaw.
func moveVector(in *components.InputData, yaw float64) gamemath.Vec3 {
	forward := gamemath.Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
	right := gamemath.Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}

	var move gamemath.Vec3
	if in.Pressed(netconfig.ActionMoveForward) {
		move = move.Add(forward)
	}
	if in.Pressed(netconfig.ActionMoveBack) {
		move = move.Sub(forward)
	}
	if in.Pressed(netconfig.ActionMoveRight) {
		move = move.Add(right)
	}
	if in.Pressed(netconfig.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if move.X == 0 && move.Z == 0 {
		return move
	}
	return move.Normalized()
}

func clampPitch(p float64) float64 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}
