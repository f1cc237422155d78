package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
)

const (
	pickupRadius = 1.2
	pickupHeight = 2.5
)

// UpdateSpawners refills item spawners after their respawn delay, hands
// items to the local player walking over them, and teleports players
// entering a portal.
func (s *Simulation) UpdateSpawners(e *ecs.ECS) {
	now := components.Now(e.World)

	local := s.LocalPlayer()
	var feet gamemath.Vec3
	alive := false
	if local != nil {
		feet = components.Transform.Get(local).Position
		feet.Y -= cfg.Player.EyeHeight
		alive = !local.HasComponent(components.CombatState) ||
			!components.CombatState.Get(local).IsInDeathState
	}

	components.Spawner.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spawner.Get(entry)

		if !sp.Available && sp.Respawn > 0 && now.Sub(sp.EmptiedAt) >= sp.Respawn {
			sp.Available = true
		}

		if !sp.Available || local == nil || !alive {
			return
		}
		if !withinPickup(feet, sp.Position) {
			return
		}
		inv := components.Inventory.Get(local)
		if !inv.AddItem(sp.ItemType) {
			return
		}
		sp.Available = false
		sp.EmptiedAt = now
		s.playCue("pickup")
	})

	if local == nil || !alive {
		return
	}
	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		if feet.DistanceTo(portal.Position) > portal.Radius {
			return
		}
		tr := components.Transform.Get(local)
		tr.Position = portal.Target
		tr.Position.Y += cfg.Player.EyeHeight
		components.Physics.Get(local).Velocity = gamemath.Vec3{}
		feet = portal.Target
	})
}

func withinPickup(feet, spawner gamemath.Vec3) bool {
	dx := feet.X - spawner.X
	dz := feet.Z - spawner.Z
	if math.Sqrt(dx*dx+dz*dz) > pickupRadius {
		return false
	}
	return math.Abs(feet.Y-spawner.Y) <= pickupHeight
}
