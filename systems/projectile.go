package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems/factory"
)

// geometryHitRadius pads the projectile's point position when testing
// against scenery, scaled with the item's visual size.
func geometryHitRadius(scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	return 0.2 * scale
}

// UpdateProjectiles advances locally-thrown projectiles: trajectory
// integration, lifetime expiry, floor and scenery splats, and hit tests
// against every other player. Entity removal is deferred until after
// the sweep.
func (s *Simulation) UpdateProjectiles(e *ecs.ECS) {
	now := components.Now(e.World)
	var finished []*donburi.Entry

	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		tr := components.Transform.Get(entry)

		if !p.Active() || now.Sub(p.CreatedAt) >= cfg.Projectile.MaxLifetime {
			p.State = netconfig.ProjectileExpired
			finished = append(finished, entry)
			return
		}

		tr.Position, p.Velocity = gamemath.IntegrateProjectile(tr.Position, p.Velocity, p.Gravity)

		if tr.Position.Y < cfg.Projectile.FloorY || s.Probe.HitsGeometry(tr.Position, geometryHitRadius(p.Scale)) {
			p.State = netconfig.ProjectileExpired
			factory.CreateSplat(s.ecs, tr.Position, 1)
			finished = append(finished, entry)
			return
		}

		if target := s.projectileTarget(e, p.OwnerID, tr.Position, cfg.Combat.PlayerHitPadding); target != nil {
			p.State = netconfig.ProjectileHit
			finished = append(finished, entry)

			attacker := s.FindPlayer(p.OwnerID)
			if attacker == nil {
				log.Printf("[combat] projectile owner %q no longer exists, hit abandoned", p.OwnerID)
				return
			}
			s.ResolveHit(attacker, target, p.ItemType, p.Damage, tr.Position)
		}
	})

	for _, entry := range finished {
		e.World.Remove(entry.Entity())
	}
}

// projectileTarget returns the first player (other than the owner)
// whose body sphere contains the projectile position, or nil.
func (s *Simulation) projectileTarget(e *ecs.ECS, ownerID string, pos gamemath.Vec3, padding float64) *donburi.Entry {
	radius := cfg.Player.CollisionRadius + padding
	var target *donburi.Entry

	playerQuery.Each(e.World, func(entry *donburi.Entry) {
		if target != nil {
			return
		}
		player := components.Player.Get(entry)
		if player.ID == ownerID {
			return
		}
		if entry.HasComponent(components.CombatState) && components.CombatState.Get(entry).IsInDeathState {
			return
		}

		body := components.Transform.Get(entry).Position
		body.Y -= cfg.Player.EyeHeight / 2
		if gamemath.SphereHit(pos, body, radius) {
			target = entry
		}
	})
	return target
}
