package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.Health,
		components.CombatState,
		components.Input,
		components.Inventory,
		components.HitCooldown,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
	)
	NetProjectile = newArchetype(
		tags.NetProjectile,
		components.NetProjectile,
		components.Transform,
	)
	Splat = newArchetype(
		tags.Splat,
		components.SplatEffect,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
	)
	Tick = newArchetype(
		components.Tick,
	)
	HitMarker = newArchetype(
		components.HitMarker,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
