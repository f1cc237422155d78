package factory

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/archetypes"
	"github.com/carllapierre/foodfight/components"
	"github.com/carllapierre/foodfight/shared/leveldata"
)

// CreateLevelEntities spawns the world's item spawners and portals.
func CreateLevelEntities(ecs *ecs.ECS, world *leveldata.World) {
	for _, sp := range world.Spawners {
		entry := archetypes.Spawner.Spawn(ecs)
		components.Spawner.SetValue(entry, components.SpawnerData{
			ItemType:  sp.ItemType,
			Position:  sp.Position,
			Respawn:   time.Duration(sp.RespawnSeconds * float64(time.Second)),
			Available: true,
		})
	}

	for _, pt := range world.Portals {
		entry := archetypes.Portal.Spawn(ecs)
		components.Portal.SetValue(entry, components.PortalData{
			Name:     pt.Name,
			Position: pt.Position,
			Target:   pt.Target,
			Radius:   pt.Radius,
		})
	}
}
