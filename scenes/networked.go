package scenes

import (
	"image/color"
	"log"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/network"
	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netcomponents"
	"github.com/carllapierre/foodfight/shared/netconfig"
	"github.com/carllapierre/foodfight/systems"
)

// reconcileEpsilon is how far prediction may drift from the server
// before the local position is corrected.
const reconcileEpsilon = 0.25

// remoteLerpFactor is the per-frame blend toward the latest snapshot
// position for remote players.
const remoteLerpFactor = 0.35

// NetworkedScene runs the simulation against a joined server: local
// prediction plus snapshot application for everything remote.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	audio        *systems.AudioPlayer
	sim          *systems.Simulation
	prediction   *network.PredictionBuffer
	playerName   string
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
}

func NewNetworkedScene(sc SceneChanger, client *network.Client, audio *systems.AudioPlayer, playerName string) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		audio:        audio,
		prediction:   &network.PredictionBuffer{},
		playerName:   playerName,
		presentIDs:   make(map[esync.NetworkId]bool),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[client] disconnected, returning to menu")
		ns.leave()
		return
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}
	ns.interpolateRemotes()

	ns.ecsWorld.Update()

	if local := ns.sim.LocalPlayer(); local != nil {
		if components.Input.Get(local).JustPressed(netconfig.ActionPause) {
			ns.leave()
		}
	}
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}
	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) leave() {
	ns.netClient.Disconnect()
	if ns.sim != nil {
		ns.sim.Close()
	}
	ns.sceneChanger.ChangeScene(NewMenuScene(ns.sceneChanger, ns.audio))
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	level := loadClientWorld()
	ns.sim = systems.NewSimulation(ns.ecsWorld, gamemath.RealClock(), registry.Default(), level, ns.netClient, ns.audio)
	ns.sim.SpawnLocalPlayer(systems.NetPlayerID(ns.netClient.LocalNetworkID()), ns.playerName)

	ns.ecsWorld.AddSystem(systems.NewInputSystem(ns.netClient, ns.prediction))
	ns.ecsWorld.AddRenderer(cfg.Default, ns.sim.DrawWorld)
	ns.ecsWorld.AddRenderer(cfg.HUD, ns.sim.DrawHUD)
}

// applySnapshot maps a server snapshot into the local world: the local
// player reconciles against prediction, remote players get replica
// entities that mirror the net components into gameplay components.
func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World
	myNetID := ns.netClient.NetworkID()

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var pos *netcomponents.NetPositionData
		var vel *netcomponents.NetVelocityData
		var state *netcomponents.NetPlayerStateData

		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetPositionData:
				cp := v
				pos = &cp
			case netcomponents.NetVelocityData:
				cp := v
				vel = &cp
			case netcomponents.NetPlayerStateData:
				cp := v
				state = &cp
			}
		}

		if ent.Id == myNetID {
			ns.reconcileLocal(pos, vel, state)
			continue
		}
		if state == nil || pos == nil {
			continue
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = ns.createReplica(ent.Id, pos, state)
		}
		entry := world.Entry(entity)

		if vel != nil {
			netcomponents.NetVelocity.SetValue(entry, *vel)
		}
		netcomponents.NetPosition.SetValue(entry, *pos)
		netcomponents.NetPlayerState.SetValue(entry, *state)

		ns.mirrorReplica(entry, state)
	}

	// Despawn replicas the server no longer reports.
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})
}

// createReplica spawns a remote player entity: the synced net
// components plus the gameplay components the simulation expects every
// player to carry.
func (ns *NetworkedScene) createReplica(id esync.NetworkId, pos *netcomponents.NetPositionData, state *netcomponents.NetPlayerStateData) donburi.Entity {
	world := ns.ecsWorld.World

	entity := world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
		components.Player,
		components.Transform,
		components.Physics,
		components.Health,
		components.CombatState,
		components.HitCooldown,
	)
	entry := world.Entry(entity)

	entry.AddComponent(esync.NetworkIdComponent)
	esync.NetworkIdComponent.SetValue(entry, id)

	components.Player.SetValue(entry, components.PlayerData{
		ID:   systems.NetPlayerID(uint(id)),
		Name: state.Name,
	})
	components.Health.SetValue(entry, components.NewHealthData(cfg.Player.Health))
	components.CombatState.SetValue(entry, components.CombatStateData{
		State:            state.StateID,
		RespawnCountdown: cfg.Player.RespawnCountdown,
	})
	components.HitCooldown.SetValue(entry, components.NewHitCooldownData())

	// First sight: snap straight to the server position.
	components.Transform.SetValue(entry, components.TransformData{
		Position: gamemath.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Yaw:      state.Yaw,
	})

	log.Printf("[client] player %q appeared (network id %d)", state.Name, uint(id))
	return entity
}

// mirrorReplica copies the authoritative slice of a snapshot into the
// replica's gameplay components.
func (ns *NetworkedScene) mirrorReplica(entry *donburi.Entry, state *netcomponents.NetPlayerStateData) {
	player := components.Player.Get(entry)
	player.Name = state.Name
	player.Kills = state.Kills
	player.Deaths = state.Deaths

	components.Transform.Get(entry).Yaw = state.Yaw

	// Death and respawn transitions ride the event channel; the
	// snapshot keeps health converged in between.
	cs := components.CombatState.Get(entry)
	if state.Health > 0 && cs.IsInDeathState {
		cs.ResetForRespawn()
	}
	components.SetHealth(ns.ecsWorld.World, entry, state.Health)

	if !cs.IsInDeathState && !cs.IsInHitState {
		cs.SetState(state.StateID)
	}
}

// interpolateRemotes eases replica positions toward the latest snapshot
// sample so 20 Hz updates don't look steppy at 60 fps.
func (ns *NetworkedScene) interpolateRemotes() {
	if ns.ecsWorld == nil {
		return
	}
	world := ns.ecsWorld.World
	myNetID := ns.netClient.NetworkID()

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || *id == myNetID {
			return
		}
		if !entry.HasComponent(netcomponents.NetPosition) || !entry.HasComponent(components.Transform) {
			return
		}

		target := netcomponents.NetPosition.Get(entry)
		tr := components.Transform.Get(entry)
		tr.Position = gamemath.Lerp(tr.Position, gamemath.Vec3{X: target.X, Y: target.Y, Z: target.Z}, remoteLerpFactor)
	})
}

// reconcileLocal checks the server's view of the local player against
// the prediction buffer. Small drift is left to the local simulation;
// past the epsilon the position snaps to the server and the inputs the
// server hasn't processed yet are replayed on top.
func (ns *NetworkedScene) reconcileLocal(pos *netcomponents.NetPositionData, vel *netcomponents.NetVelocityData, state *netcomponents.NetPlayerStateData) {
	local := ns.sim.LocalPlayer()
	if local == nil || pos == nil || state == nil {
		return
	}

	components.SetHealth(ns.ecsWorld.World, local, state.Health)

	tr := components.Transform.Get(local)
	serverPos := gamemath.Vec3{X: pos.X, Y: pos.Y, Z: pos.Z}

	if state.LastSequence == 0 || ns.prediction.NextSeq() == 0 {
		// Nothing predicted yet: accept the spawn position.
		tr.Position = serverPos
		return
	}

	record, ok := ns.prediction.Get(state.LastSequence)
	if !ok {
		return
	}
	if record.Predicted.DistanceTo(serverPos) <= reconcileEpsilon {
		return
	}

	tr.Position = serverPos
	for _, rec := range ns.prediction.GetUnacknowledged(state.LastSequence) {
		ns.replayInput(tr, rec.Input)
	}
	if vel != nil {
		phys := components.Physics.Get(local)
		phys.Velocity = gamemath.Vec3{X: vel.X, Y: vel.Y, Z: vel.Z}
	}
}

// replayInput re-applies one unacknowledged input frame's horizontal
// movement after a correction. Vertical motion stays with the local
// simulation; the next snapshots converge it.
func (ns *NetworkedScene) replayInput(tr *components.TransformData, input messages.PlayerInput) {
	move := replayMoveVector(input)
	if move.X == 0 && move.Z == 0 {
		return
	}

	next := tr.Position
	next.X += move.X * cfg.Player.MoveSpeed
	next.Z += move.Z * cfg.Player.MoveSpeed
	if !ns.sim.Probe.CheckCollision(next, false) {
		tr.Position.X = next.X
		tr.Position.Z = next.Z
	}
}

func replayMoveVector(input messages.PlayerInput) gamemath.Vec3 {
	forward := gamemath.Vec3{X: math.Sin(input.Yaw), Z: math.Cos(input.Yaw)}
	right := gamemath.Vec3{X: math.Cos(input.Yaw), Z: -math.Sin(input.Yaw)}

	var move gamemath.Vec3
	if input.Actions[netconfig.ActionMoveForward] {
		move = move.Add(forward)
	}
	if input.Actions[netconfig.ActionMoveBack] {
		move = move.Sub(forward)
	}
	if input.Actions[netconfig.ActionMoveRight] {
		move = move.Add(right)
	}
	if input.Actions[netconfig.ActionMoveLeft] {
		move = move.Sub(right)
	}
	if move.X == 0 && move.Z == 0 {
		return move
	}
	return move.Normalized()
}
