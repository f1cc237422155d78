package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/archetypes"
	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

// CreatePlayer spawns a player entity at the given eye position.
func CreatePlayer(ecs *ecs.ECS, id, name string, isLocal bool, position gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		ID:      id,
		Name:    name,
		IsLocal: isLocal,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: position,
	})
	components.Health.SetValue(player, components.NewHealthData(cfg.Player.Health))
	components.CombatState.SetValue(player, components.CombatStateData{
		State:            netconfig.Idle,
		RespawnCountdown: cfg.Player.RespawnCountdown,
	})
	components.Inventory.SetValue(player, components.InventoryData{
		Slots: make([]components.ItemSlot, cfg.Player.HotbarSize),
	})
	components.HitCooldown.SetValue(player, components.NewHitCooldownData())

	return player
}

// CreateTick spawns the singleton tick entity driving the world's clock.
func CreateTick(ecs *ecs.ECS, clock gamemath.Clock) *donburi.Entry {
	tick := archetypes.Tick.Spawn(ecs)
	components.Tick.SetValue(tick, components.TickData{
		Clock: clock,
		Now:   clock.Now(),
	})
	return tick
}
