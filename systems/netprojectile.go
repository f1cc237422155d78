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

// UpdateNetProjectiles advances remote players' projectiles. They fly
// the same trajectory as local ones but are only hit-tested against the
// local player, with a padded radius that absorbs prediction error
// between the two clients' views.
func (s *Simulation) UpdateNetProjectiles(e *ecs.ECS) {
	now := components.Now(e.World)
	local := s.LocalPlayer()
	var finished []*donburi.Entry

	components.NetProjectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.NetProjectile.Get(entry)
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

		if local == nil || components.Player.Get(local).ID == p.OwnerID {
			return
		}

		body := components.Transform.Get(local).Position
		body.Y -= cfg.Player.EyeHeight / 2
		radius := cfg.Player.CollisionRadius + cfg.Combat.NetProjectilePadding
		if !gamemath.SphereHit(tr.Position, body, radius) {
			return
		}

		p.State = netconfig.ProjectileHit
		finished = append(finished, entry)

		attacker := s.FindPlayer(p.OwnerID)
		if attacker == nil {
			log.Printf("[combat] net projectile owner %q unknown, hit abandoned", p.OwnerID)
			factory.CreateSplat(s.ecs, tr.Position, 1)
			return
		}
		s.ResolveHit(attacker, local, p.ItemType, p.Damage, tr.Position)
	})

	for _, entry := range finished {
		e.World.Remove(entry.Entity())
	}
}
