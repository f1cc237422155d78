package systems

import (
	"log"
	"math/rand"
	"strconv"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/carllapierre/foodfight/collision"
	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/leveldata"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems/factory"
)

// NetBus is the slice of the network client the simulation uses. Nil
// means offline: sends are skipped and no remote events arrive.
type NetBus interface {
	Connected() bool
	LocalNetworkID() uint

	SendProjectile(messages.ProjectileThrowEvent)
	SendPlayerHit(messages.PlayerHitEvent)
	SendPlayerState(messages.PlayerStateEvent)
	SendKillAttribution(messages.KillAttributionEvent)
	SendConsume(messages.ConsumeEvent)
	SendInput(messages.PlayerInput)

	DrainThrowEvents() []messages.ProjectileThrowEvent
	DrainHitEvents() []messages.PlayerHitEvent
	DrainHealthUpdates() []messages.HealthUpdateEvent
	DrainStateEvents() []messages.PlayerStateEvent
	DrainDeathEvents() []messages.DeathEvent
	DrainRespawnEvents() []messages.RespawnEvent
	DrainScoreEvents() []messages.ScoreUpdateEvent
}

// CuePlayer plays a named sound cue. Nil disables audio.
type CuePlayer interface {
	Play(name string)
}

var (
	playerQuery = donburi.NewQuery(filter.Contains(
		components.Player,
		components.Transform,
	))
	localPlayerQuery = donburi.NewQuery(filter.Contains(
		components.Player,
		components.Input,
		components.Transform,
		components.Physics,
		components.CombatState,
		components.Health,
		components.Inventory,
		components.HitCooldown,
	))
)

// Simulation owns the headless gameplay systems: character movement and
// state, projectiles, combat resolution and world interaction. It runs
// identically offline and under a network session; the scene layers
// input, rendering and snapshot application on top.
type Simulation struct {
	Registry *registry.ItemRegistry
	Probe    *collision.Probe
	Level    *leveldata.World
	Net      NetBus
	Audio    CuePlayer

	ecs           *ecs.ECS
	lastSentState netconfig.StateID

	// Scoreboard mirrors the server's authoritative tallies.
	Kills  map[uint]int
	Deaths map[uint]int
}

// NewSimulation wires a simulation into the ECS: creates the tick
// entity, registers the update systems in order and subscribes the
// combat event handlers.
func NewSimulation(e *ecs.ECS, clock gamemath.Clock, reg *registry.ItemRegistry, level *leveldata.World, net NetBus, audio CuePlayer) *Simulation {
	s := &Simulation{
		Registry:      reg,
		Probe:         collision.NewProbe(level.CollidableBounds(), cfg.Player.CollisionRadius, cfg.Player.EyeHeight),
		Level:         level,
		Net:           net,
		Audio:         audio,
		ecs:           e,
		lastSentState: netconfig.StateNone,
		Kills:         make(map[uint]int),
		Deaths:        make(map[uint]int),
	}

	factory.CreateTick(e, clock)
	factory.CreateLevelEntities(e, level)

	components.HealthChanged.Subscribe(e.World, s.onHealthChanged)
	components.PlayerDied.Subscribe(e.World, s.onPlayerDied)
	components.HitLanded.Subscribe(e.World, s.onHitLanded)

	e.AddSystem(s.UpdateTick)
	e.AddSystem(s.ApplyNetEvents)
	e.AddSystem(s.UpdateCharacters)
	e.AddSystem(s.UpdateActions)
	e.AddSystem(s.UpdateProjectiles)
	e.AddSystem(s.UpdateNetProjectiles)
	e.AddSystem(s.UpdateSpawners)
	e.AddSystem(s.UpdateEffects)
	e.AddSystem(s.FlushFrame)

	return s
}

// Close detaches the event subscriptions. The simulation must not be
// updated afterwards.
func (s *Simulation) Close() {
	components.HealthChanged.Unsubscribe(s.ecs.World, s.onHealthChanged)
	components.PlayerDied.Unsubscribe(s.ecs.World, s.onPlayerDied)
	components.HitLanded.Unsubscribe(s.ecs.World, s.onHitLanded)
}

// UpdateTick advances the world clock.
func (s *Simulation) UpdateTick(e *ecs.ECS) {
	if entry, ok := components.Tick.First(e.World); ok {
		components.Tick.Get(entry).Advance()
	}
}

// FlushFrame delivers the frame's queued events and rolls input state.
func (s *Simulation) FlushFrame(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
	localPlayerQuery.Each(e.World, func(entry *donburi.Entry) {
		components.Input.Get(entry).EndFrame()
	})
}

// LocalPlayer returns the local player entry, or nil before one exists.
func (s *Simulation) LocalPlayer() *donburi.Entry {
	var local *donburi.Entry
	playerQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).IsLocal {
			local = entry
		}
	})
	return local
}

// FindPlayer returns the player entry with the given ID, or nil.
func (s *Simulation) FindPlayer(id string) *donburi.Entry {
	var found *donburi.Entry
	playerQuery.Each(s.ecs.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).ID == id {
			found = entry
		}
	})
	return found
}

// SpawnLocalPlayer creates the local player at the level's default
// spawn (eye height above the spawn position).
func (s *Simulation) SpawnLocalPlayer(id, name string) *donburi.Entry {
	spawn := s.Level.DefaultSpawn()
	pos := spawn.Position
	pos.Y += cfg.Player.EyeHeight
	entry := factory.CreatePlayer(s.ecs, id, name, true, pos)
	components.Transform.Get(entry).Yaw = spawn.Yaw
	return entry
}

// respawnAt resets a dead player at the given eye position.
func (s *Simulation) respawnAt(entry *donburi.Entry, pos gamemath.Vec3, yaw float64) {
	tr := components.Transform.Get(entry)
	tr.Position = pos
	tr.Yaw = yaw
	tr.Pitch = 0

	phys := components.Physics.Get(entry)
	phys.Velocity = gamemath.Vec3{}
	phys.OnGround = false
	phys.WasOnGround = false

	components.CombatState.Get(entry).ResetForRespawn()
	components.ArmRespawnReset(entry)
	components.SetHealth(s.ecs.World, entry, cfg.Player.Health)

	components.PlayerRespawned.Publish(s.ecs.World, components.PlayerRespawnedEvent{Entry: entry})
	s.playCue("respawn")
}

// respawn picks a random spawn point and resets the player there.
func (s *Simulation) respawn(entry *donburi.Entry) {
	spawn := s.Level.DefaultSpawn()
	if n := len(s.Level.SpawnPoints); n > 0 {
		spawn = s.Level.SpawnPoints[rand.Intn(n)]
	}
	pos := spawn.Position
	pos.Y += cfg.Player.EyeHeight
	s.respawnAt(entry, pos, spawn.Yaw)
}

// ResolveHit applies the hit debounce and streak rules for a projectile
// impact. Accepted hits publish HitLanded; damage is applied locally
// when the target is the local player and reported to the server when
// it is remote. Returns false when the hit was discarded.
func (s *Simulation) ResolveHit(attacker, target *donburi.Entry, itemType string, damage int, pos gamemath.Vec3) bool {
	targetPlayer := components.Player.Get(target)

	// Dead players can't be hit again.
	if target.HasComponent(components.CombatState) && components.CombatState.Get(target).IsInDeathState {
		return false
	}

	now := components.Now(s.ecs.World)
	window := cfg.Combat.RemoteHitCooldown
	if targetPlayer.IsLocal {
		window = cfg.Combat.LocalHitCooldown
	}

	ledger := components.HitCooldown.Get(attacker)
	streak, accepted := ledger.Accept(targetPlayer.ID, now, window, cfg.Combat.StreakWindow)
	if !accepted {
		return false
	}

	attackerID := components.Player.Get(attacker).ID
	components.HitLanded.Publish(s.ecs.World, components.HitLandedEvent{
		AttackerID: attackerID,
		TargetID:   targetPlayer.ID,
		ItemType:   itemType,
		Damage:     damage,
		Streak:     streak,
		Position:   pos,
	})

	if targetPlayer.IsLocal {
		components.RemoveHealthFrom(s.ecs.World, target, damage, attackerID)
	} else if s.Net != nil && s.Net.Connected() {
		targetNetID, ok := parseNetID(targetPlayer.ID)
		if !ok {
			log.Printf("[combat] unparseable target id %q, hit not reported", targetPlayer.ID)
			return true
		}
		s.Net.SendPlayerHit(messages.PlayerHitEvent{
			AttackerNetworkID: s.Net.LocalNetworkID(),
			TargetNetworkID:   targetNetID,
			ItemType:          itemType,
			Damage:            damage,
			HitCount:          streak,
			Position:          pos,
		})
	}
	return true
}

func (s *Simulation) onHealthChanged(w donburi.World, evt components.HealthChangedEvent) {
	if evt.New >= evt.Old {
		return
	}
	entry := evt.Entry
	if entry.HasComponent(components.CombatState) {
		components.CombatState.Get(entry).EnterHit(components.Now(w))
	}
	if entry.HasComponent(components.Player) && components.Player.Get(entry).IsLocal {
		s.playCue("hurt")
	}
}

func (s *Simulation) onPlayerDied(w donburi.World, evt components.PlayerDiedEvent) {
	entry := evt.Entry
	player := components.Player.Get(entry)
	if entry.HasComponent(components.CombatState) {
		components.CombatState.Get(entry).EnterDeath(components.Now(w))
	}
	player.Deaths++

	if killer := s.FindPlayer(evt.KillerID); killer != nil && evt.KillerID != player.ID {
		components.Player.Get(killer).Kills++
	}

	if !player.IsLocal {
		return
	}
	s.playCue("death")
	s.announceState(netconfig.Death)

	if s.Net != nil && s.Net.Connected() && evt.KillerID != "" {
		if killerNetID, ok := parseNetID(evt.KillerID); ok && killerNetID != s.Net.LocalNetworkID() {
			s.Net.SendKillAttribution(messages.KillAttributionEvent{KillerNetworkID: killerNetID})
		}
	}
}

func (s *Simulation) onHitLanded(w donburi.World, evt components.HitLandedEvent) {
	factory.CreateSplat(s.ecs, evt.Position, evt.Streak)

	local := s.LocalPlayer()
	if local != nil && components.Player.Get(local).ID == evt.AttackerID {
		factory.ShowHitMarker(s.ecs, evt.Streak)
		s.playCue("hit")
	}
}

// announceState sends a state change to the server, deduplicated.
func (s *Simulation) announceState(state netconfig.StateID) {
	if state == s.lastSentState {
		return
	}
	s.lastSentState = state
	if s.Net == nil || !s.Net.Connected() {
		return
	}
	s.Net.SendPlayerState(messages.PlayerStateEvent{
		NetworkID: s.Net.LocalNetworkID(),
		StateID:   int(state),
	})
}

func (s *Simulation) playCue(name string) {
	if s.Audio != nil {
		s.Audio.Play(name)
	}
}

func parseNetID(id string) (uint, bool) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// NetPlayerID formats a network id as a player entity ID.
func NetPlayerID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
