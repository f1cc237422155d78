package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/archetypes"
	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

// CreateProjectile spawns a locally-thrown projectile from the owner's
// eye, offset forward so it doesn't clip the thrower.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, itemType string, damage int, scale float64) *donburi.Entry {
	tr := components.Transform.Get(owner)
	aim := tr.Forward()

	origin := tr.Position.Add(aim.Scale(cfg.Projectile.SpawnOffset))
	velocity := gamemath.CalculateThrowVelocity(aim, cfg.Projectile.ThrowSpeed, cfg.Projectile.ArcLift)

	p := archetypes.Projectile.Spawn(ecs)
	components.Transform.SetValue(p, components.TransformData{Position: origin})
	components.Projectile.SetValue(p, components.ProjectileData{
		ItemType:  itemType,
		Velocity:  velocity,
		Damage:    damage,
		Scale:     scale,
		Gravity:   cfg.Projectile.Gravity,
		CreatedAt: components.Now(ecs.World),
		State:     netconfig.ProjectileFlying,
		OwnerID:   components.Player.Get(owner).ID,
	})
	return p
}

// CreateNetProjectile spawns a remote player's projectile from a throw
// event. It flies the same trajectory locally but is only ever tested
// against the local player.
func CreateNetProjectile(ecs *ecs.ECS, evt messages.ProjectileThrowEvent, ownerID string) *donburi.Entry {
	p := archetypes.NetProjectile.Spawn(ecs)
	components.Transform.SetValue(p, components.TransformData{Position: evt.Origin})
	components.NetProjectile.SetValue(p, components.NetProjectileData{
		ItemType:  evt.ItemType,
		Velocity:  evt.Velocity,
		Damage:    evt.Damage,
		Scale:     evt.Scale,
		Gravity:   cfg.Projectile.Gravity,
		CreatedAt: components.Now(ecs.World),
		State:     netconfig.ProjectileFlying,
		OwnerID:   ownerID,
	})
	return p
}
