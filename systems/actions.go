package systems

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems/factory"
)

// UpdateActions handles the local player's throw, consume and hotbar
// actions. Throws and consumes respect the animation lockout; cycling
// the hotbar is always allowed while alive.
func (s *Simulation) UpdateActions(e *ecs.ECS) {
	now := components.Now(e.World)

	localPlayerQuery.Each(e.World, func(entry *donburi.Entry) {
		if !components.Player.Get(entry).IsLocal {
			return
		}

		cs := components.CombatState.Get(entry)
		in := components.Input.Get(entry)
		inv := components.Inventory.Get(entry)

		if cs.InputBlocked() {
			return
		}

		if in.JustPressed(netconfig.ActionNextItem) {
			inv.Cycle(1)
		}
		if in.JustPressed(netconfig.ActionPrevItem) {
			inv.Cycle(-1)
		}

		if cs.ActionLocked(now) {
			return
		}

		if in.JustPressed(netconfig.ActionThrow) {
			s.throwActiveItem(entry, cs, inv, now)
			return
		}
		if in.JustPressed(netconfig.ActionConsume) {
			s.consumeActiveItem(entry, cs, inv, now)
		}
	})
}

func (s *Simulation) throwActiveItem(entry *donburi.Entry, cs *components.CombatStateData, inv *components.InventoryData, now time.Time) {
	itemType := inv.ActiveItem()
	if itemType == "" {
		return
	}
	inv.ConsumeActive()

	damage := s.Registry.Damage(itemType)
	scale := 1.0
	if item, ok := s.Registry.Lookup(itemType); ok && item.Scale > 0 {
		scale = item.Scale
	}

	projectile := factory.CreateProjectile(s.ecs, entry, itemType, damage, scale)

	cs.LockoutUntil = now.Add(cfg.Combat.ThrowLockout)
	cs.SetState(netconfig.Throw)
	s.announceState(netconfig.Throw)
	s.playCue("throw")

	if s.Net != nil && s.Net.Connected() {
		p := components.Projectile.Get(projectile)
		origin := components.Transform.Get(projectile).Position
		s.Net.SendProjectile(messages.ProjectileThrowEvent{
			OwnerNetworkID: s.Net.LocalNetworkID(),
			ItemType:       itemType,
			Origin:         origin,
			Velocity:       p.Velocity,
			Scale:          scale,
			Damage:         damage,
		})
	}
}

func (s *Simulation) consumeActiveItem(entry *donburi.Entry, cs *components.CombatStateData, inv *components.InventoryData, now time.Time) {
	itemType := inv.ActiveItem()
	if itemType == "" {
		return
	}
	item, ok := s.Registry.Lookup(itemType)
	if !ok || !item.IsConsumable {
		return
	}
	inv.ConsumeActive()

	components.AddHealth(s.ecs.World, entry, item.Heal)

	cs.LockoutUntil = now.Add(cfg.Combat.ConsumeLockout)
	cs.SetState(netconfig.Consume)
	s.announceState(netconfig.Consume)
	s.playCue("consume")

	if s.Net != nil && s.Net.Connected() {
		s.Net.SendConsume(messages.ConsumeEvent{
			NetworkID: s.Net.LocalNetworkID(),
			ItemType:  itemType,
		})
	}
}
