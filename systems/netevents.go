package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems/factory"
)

// ApplyNetEvents drains the network client's event queues into the
// world: remote throws become net projectiles, server-validated hits
// become visuals, and authoritative health/death/respawn/score state
// overrides local prediction.
func (s *Simulation) ApplyNetEvents(e *ecs.ECS) {
	if s.Net == nil || !s.Net.Connected() {
		return
	}
	localID := NetPlayerID(s.Net.LocalNetworkID())

	for _, evt := range s.Net.DrainThrowEvents() {
		ownerID := NetPlayerID(evt.OwnerNetworkID)
		if ownerID == localID {
			continue // our own throw, echoed back by the broadcast
		}
		factory.CreateNetProjectile(e, evt, ownerID)
	}

	// Hit broadcasts are visuals only; damage arrives as a health update.
	for _, evt := range s.Net.DrainHitEvents() {
		factory.CreateSplat(s.ecs, evt.Position, evt.HitCount)
		if NetPlayerID(evt.AttackerNetworkID) == localID {
			factory.ShowHitMarker(s.ecs, evt.HitCount)
			s.playCue("hit")
		}
	}

	for _, evt := range s.Net.DrainHealthUpdates() {
		entry := s.FindPlayer(NetPlayerID(evt.NetworkID))
		if entry == nil || !entry.HasComponent(components.Health) {
			continue
		}
		components.SetHealth(e.World, entry, evt.Health)
	}

	for _, evt := range s.Net.DrainStateEvents() {
		id := NetPlayerID(evt.NetworkID)
		if id == localID {
			continue
		}
		entry := s.FindPlayer(id)
		if entry == nil || !entry.HasComponent(components.CombatState) {
			continue
		}
		components.CombatState.Get(entry).SetState(netconfig.StateID(evt.StateID))
	}

	for _, evt := range s.Net.DrainDeathEvents() {
		victim := s.FindPlayer(NetPlayerID(evt.VictimNetworkID))
		if victim == nil || !victim.HasComponent(components.Health) {
			continue
		}
		killerID := ""
		if evt.KillerNetworkID != 0 {
			killerID = NetPlayerID(evt.KillerNetworkID)
		}
		hp := components.Health.Get(victim)
		components.RemoveHealthFrom(e.World, victim, hp.Current, killerID)
	}

	for _, evt := range s.Net.DrainRespawnEvents() {
		entry := s.FindPlayer(NetPlayerID(evt.NetworkID))
		if entry == nil {
			continue
		}
		pos := evt.Position
		pos.Y += cfg.Player.EyeHeight
		if evt.NetworkID == s.Net.LocalNetworkID() {
			s.respawnAt(entry, pos, components.Transform.Get(entry).Yaw)
			continue
		}
		if entry.HasComponent(components.CombatState) {
			components.CombatState.Get(entry).ResetForRespawn()
		}
		if entry.HasComponent(components.Health) {
			components.ArmRespawnReset(entry)
			components.SetHealth(e.World, entry, cfg.Player.Health)
		}
	}

	for _, evt := range s.Net.DrainScoreEvents() {
		s.Kills = evt.Kills
		s.Deaths = evt.Deaths
	}
}
