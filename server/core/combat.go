package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/router"

	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netcomponents"
)

// onProjectileThrow fans a throw out to the other clients. The owner id
// is stamped from the session so a client cannot throw as someone else.
func (s *Server) onProjectileThrow(client *router.NetworkClient, evt messages.ProjectileThrowEvent) {
	s.mu.RLock()
	sess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}

	id, ok := s.netID(sess)
	if !ok {
		return
	}
	evt.OwnerNetworkID = id

	// Cap the reported damage at the item table's value.
	if max := s.registry.Damage(evt.ItemType); evt.Damage > max {
		evt.Damage = max
	}

	sess.phys.mu.Lock()
	sess.phys.throwUntil = time.Now().Add(cfg.Combat.ThrowLockout)
	sess.phys.mu.Unlock()

	s.broadcastExcept(client, evt)
}

// onPlayerHit applies a client's damage report. The server is
// authoritative: it re-stamps the attacker, debounces per target,
// clamps damage to the item table and owns the resulting health.
func (s *Server) onPlayerHit(client *router.NetworkClient, evt messages.PlayerHitEvent) {
	s.mu.RLock()
	attackerSess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}
	attackerID, ok := s.netID(attackerSess)
	if !ok {
		return
	}
	evt.AttackerNetworkID = attackerID

	_, targetSess := s.sessionByNetID(evt.TargetNetworkID)
	if targetSess == nil {
		return
	}

	now := time.Now()
	tp := targetSess.phys
	tp.mu.Lock()
	if tp.dead || now.Sub(tp.lastHitAt) < cfg.Combat.RemoteHitCooldown {
		tp.mu.Unlock()
		return
	}
	tp.lastHitAt = now
	tp.hitLockUntil = now.Add(cfg.Player.HitStateDuration)
	tp.mu.Unlock()

	damage := evt.Damage
	if max := s.registry.Damage(evt.ItemType); damage > max || damage <= 0 {
		damage = max
	}

	entry := s.world.Entry(targetSess.entity)
	state := netcomponents.NetPlayerState.Get(entry)
	state.Health -= damage
	if state.Health < 0 {
		state.Health = 0
	}

	s.broadcastExcept(client, evt)
	s.broadcast(messages.HealthUpdateEvent{
		NetworkID: evt.TargetNetworkID,
		Health:    state.Health,
	})

	if state.Health == 0 {
		s.killPlayer(attackerSess, targetSess, attackerID, evt.TargetNetworkID, now)
	}
}

// onKillAttribution is the fallback for deaths the server never
// observed: the victim's client predicted lethal damage that no hit
// report reached us for. Deaths already handled authoritatively are
// ignored.
func (s *Server) onKillAttribution(client *router.NetworkClient, evt messages.KillAttributionEvent) {
	s.mu.RLock()
	victimSess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}
	victimSess.phys.mu.Lock()
	dead := victimSess.phys.dead
	victimSess.phys.mu.Unlock()
	if dead {
		return
	}

	victimID, ok := s.netID(victimSess)
	if !ok {
		return
	}

	entry := s.world.Entry(victimSess.entity)
	state := netcomponents.NetPlayerState.Get(entry)
	state.Health = 0
	s.broadcast(messages.HealthUpdateEvent{NetworkID: victimID, Health: 0})

	_, killerSess := s.sessionByNetID(evt.KillerNetworkID)
	s.killPlayer(killerSess, victimSess, evt.KillerNetworkID, victimID, time.Now())
}

// killPlayer records a death: death state, tallies, persistence and the
// broadcasts. killerSess may be nil for environmental deaths.
func (s *Server) killPlayer(killerSess, victimSess *session, killerID, victimID uint, now time.Time) {
	victimSess.phys.mu.Lock()
	victimSess.phys.dead = true
	victimSess.phys.respawnDue = now.Add(cfg.Player.RespawnCountdown)
	victimSess.phys.mu.Unlock()

	s.mu.Lock()
	s.deaths[victimID]++
	if killerSess != nil && killerID != victimID {
		s.kills[killerID]++
	}
	s.mu.Unlock()

	if s.stats != nil {
		if err := s.stats.RecordDeath(victimSess.name); err != nil {
			log.Printf("[server] record death: %v", err)
		}
		if killerSess != nil && killerID != victimID {
			if err := s.stats.RecordKill(killerSess.name); err != nil {
				log.Printf("[server] record kill: %v", err)
			}
		}
	}

	if killerID == victimID {
		killerID = 0
	}
	s.broadcast(messages.DeathEvent{
		VictimNetworkID: victimID,
		KillerNetworkID: killerID,
	})
	s.broadcastScores()

	log.Printf("[server] player %q splatted (killer id %d)", victimSess.name, killerID)
}

// respawnDuePlayers revives every dead player whose countdown elapsed.
func (s *Server) respawnDuePlayers(now time.Time) {
	s.mu.RLock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	for _, sess := range sessions {
		pp := sess.phys

		pp.mu.Lock()
		due := pp.dead && !now.Before(pp.respawnDue)
		pp.mu.Unlock()
		if !due || !s.world.Valid(sess.entity) {
			continue
		}

		spawn := s.pickSpawn()
		pp.mu.Lock()
		pp.dead = false
		pp.hitLockUntil = time.Time{}
		pp.throwUntil = time.Time{}
		pp.mu.Unlock()

		pp.pos = spawn.Position
		pp.pos.Y += cfg.Player.EyeHeight
		pp.vel = gamemath.Vec3{}
		pp.yaw = spawn.Yaw
		pp.onGround = false
		pp.wasOnGround = false

		entry := s.world.Entry(sess.entity)
		state := netcomponents.NetPlayerState.Get(entry)
		state.Health = cfg.Player.Health

		id, ok := s.netID(sess)
		if !ok {
			continue
		}
		s.broadcast(messages.HealthUpdateEvent{NetworkID: id, Health: state.Health})
		s.broadcast(messages.RespawnEvent{NetworkID: id, Position: spawn.Position})
	}
}

// onConsume heals the eater by the item's heal value. Consumables are
// validated against the item table; the event fans out so other clients
// play the animation.
func (s *Server) onConsume(client *router.NetworkClient, evt messages.ConsumeEvent) {
	s.mu.RLock()
	sess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}
	sess.phys.mu.Lock()
	dead := sess.phys.dead
	sess.phys.mu.Unlock()
	if dead {
		return
	}

	item, found := s.registry.Lookup(evt.ItemType)
	if !found || !item.IsConsumable {
		return
	}

	id, ok := s.netID(sess)
	if !ok {
		return
	}
	evt.NetworkID = id

	entry := s.world.Entry(sess.entity)
	state := netcomponents.NetPlayerState.Get(entry)
	state.Health += item.Heal
	if state.Health > cfg.Player.Health {
		state.Health = cfg.Player.Health
	}

	s.broadcastExcept(client, evt)
	s.broadcast(messages.HealthUpdateEvent{NetworkID: id, Health: state.Health})
}

// onPlayerState relays client animation announcements (throw, consume)
// for instant playback; the synced state remains authoritative.
func (s *Server) onPlayerState(client *router.NetworkClient, evt messages.PlayerStateEvent) {
	s.mu.RLock()
	sess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}

	id, ok := s.netID(sess)
	if !ok {
		return
	}
	evt.NetworkID = id

	s.broadcastExcept(client, evt)
}

// broadcastScores snapshots the tallies under the lock and fans them out.
func (s *Server) broadcastScores() {
	s.mu.RLock()
	kills := make(map[uint]int, len(s.kills))
	for id, n := range s.kills {
		kills[id] = n
	}
	deaths := make(map[uint]int, len(s.deaths))
	for id, n := range s.deaths {
		deaths[id] = n
	}
	s.mu.RUnlock()

	s.broadcast(messages.ScoreUpdateEvent{Kills: kills, Deaths: deaths})
}
