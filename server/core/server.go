package core

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"

	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"

	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/shared/leveldata"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netcomponents"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

// StatsStore persists kill/death tallies. Nil disables persistence.
type StatsStore interface {
	RecordKill(name string) error
	RecordDeath(name string) error
}

// session is the per-client server state: the synced entity plus the
// server-only physics that drives it.
type session struct {
	entity donburi.Entity
	name   string
	token  string
	phys   *playerPhysics
}

// Server owns the authoritative world: it spawns an entity per joined
// client, steps player physics from their inputs, validates combat
// reports and syncs the result back out through esync.
type Server struct {
	config    Config
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	level    *leveldata.World
	registry *registry.ItemRegistry
	stats    StatsStore

	mu       sync.RWMutex
	sessions map[*router.NetworkClient]*session
	kills    map[uint]int
	deaths   map[uint]int
}

// NewServer builds a server over the given world data and item table.
func NewServer(config Config, level *leveldata.World, reg *registry.ItemRegistry, stats StatsStore) *Server {
	world := donburi.NewWorld()

	s := &Server{
		config:   config,
		world:    world,
		level:    level,
		registry: reg,
		stats:    stats,
		sessions: make(map[*router.NetworkClient]*session),
		kills:    make(map[uint]int),
		deaths:   make(map[uint]int),
	}
	s.loop = NewGameLoop(s, config.TickRate)

	srvsync.UseEsync(world)
	s.setupRouterCallbacks()

	return s
}

// Start runs the game loop and blocks serving the websocket transport.
func (s *Server) Start() error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(s.config.Port, "", nil)
	return s.transport.Start()
}

// Stop shuts the game loop down.
func (s *Server) Stop() {
	s.loop.Stop()
}

// World returns the ECS world.
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined clients.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRequest) {
		s.onJoinRequest(client, msg)
	})

	router.On(func(client *router.NetworkClient, msg messages.PlayerInput) {
		s.onPlayerInput(client, msg)
	})

	router.On(func(client *router.NetworkClient, evt messages.ProjectileThrowEvent) {
		s.onProjectileThrow(client, evt)
	})

	router.On(func(client *router.NetworkClient, evt messages.PlayerHitEvent) {
		s.onPlayerHit(client, evt)
	})

	router.On(func(client *router.NetworkClient, evt messages.KillAttributionEvent) {
		s.onKillAttribution(client, evt)
	})

	router.On(func(client *router.NetworkClient, evt messages.ConsumeEvent) {
		s.onConsume(client, evt)
	})

	router.On(func(client *router.NetworkClient, evt messages.PlayerStateEvent) {
		s.onPlayerState(client, evt)
	})

	router.On(func(client *router.NetworkClient, req messages.WorldSaveRequest) {
		s.onWorldSave(client, req)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, msg messages.JoinRequest) {
	if s.config.Version != "" && msg.Version != s.config.Version {
		s.send(client, messages.JoinRejected{
			Reason: "version mismatch: server requires " + s.config.Version,
		})
		return
	}

	s.mu.RLock()
	full := len(s.sessions) >= s.config.MaxPlayers
	_, alreadyJoined := s.sessions[client]
	s.mu.RUnlock()

	if alreadyJoined {
		return
	}
	if full {
		s.send(client, messages.JoinRejected{Reason: "server is full"})
		return
	}

	level := s.currentLevel()
	spawn := s.pickSpawn()

	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
	)
	entry := s.world.Entry(entity)

	netcomponents.NetPosition.Set(entry, &netcomponents.NetPositionData{
		X: spawn.Position.X,
		Y: spawn.Position.Y + cfg.Player.EyeHeight,
		Z: spawn.Position.Z,
	})
	netcomponents.NetVelocity.Set(entry, &netcomponents.NetVelocityData{})
	netcomponents.NetPlayerState.Set(entry, &netcomponents.NetPlayerStateData{
		StateID: netconfig.Idle,
		Health:  cfg.Player.Health,
		Yaw:     spawn.Yaw,
		Name:    msg.PlayerName,
	})

	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetPlayerState,
	); err != nil {
		log.Printf("[server] network sync for %s failed: %v", client.Id(), err)
		s.world.Remove(entity)
		s.send(client, messages.JoinRejected{Reason: "internal error"})
		return
	}

	sess := &session{
		entity: entity,
		name:   msg.PlayerName,
		token:  newToken(),
		phys:   newPlayerPhysics(level, spawn),
	}

	s.mu.Lock()
	s.sessions[client] = sess
	s.mu.Unlock()

	nid := esync.GetNetworkId(entry)
	if nid == nil {
		log.Printf("[server] no network id after sync for %s", client.Id())
		return
	}

	s.send(client, messages.JoinAccepted{
		NetworkID:      *nid,
		ReconnectToken: sess.token,
		ServerName:     s.config.Name,
		TickRate:       s.config.TickRate,
		WorldName:      level.Name,
	})

	log.Printf("[server] player %q joined as network id %d", msg.PlayerName, uint(*nid))
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	sess, ok := s.sessions[client]
	if ok {
		delete(s.sessions, client)
	}
	s.mu.Unlock()

	if ok && s.world.Valid(sess.entity) {
		s.world.Remove(sess.entity)
	}
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.RLock()
	sess, ok := s.sessions[client]
	s.mu.RUnlock()
	if !ok {
		return
	}

	sess.phys.mu.Lock()
	// Inputs can arrive out of order; only the newest wins.
	if input.Sequence > sess.phys.input.Sequence || sess.phys.input.Sequence == 0 {
		sess.phys.input = input
	}
	sess.phys.mu.Unlock()
}

// session lookups by network id scan the (small) session table.
func (s *Server) sessionByNetID(id uint) (*router.NetworkClient, *session) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for client, sess := range s.sessions {
		if !s.world.Valid(sess.entity) {
			continue
		}
		nid := esync.GetNetworkId(s.world.Entry(sess.entity))
		if nid != nil && uint(*nid) == id {
			return client, sess
		}
	}
	return nil, nil
}

func (s *Server) netID(sess *session) (uint, bool) {
	if !s.world.Valid(sess.entity) {
		return 0, false
	}
	nid := esync.GetNetworkId(s.world.Entry(sess.entity))
	if nid == nil {
		return 0, false
	}
	return uint(*nid), true
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s failed: %v", client.Id(), err)
	}
}

// broadcast sends msg to every joined client.
func (s *Server) broadcast(msg any) {
	s.broadcastExcept(nil, msg)
}

// broadcastExcept sends msg to every joined client but skip.
func (s *Server) broadcastExcept(skip *router.NetworkClient, msg any) {
	s.mu.RLock()
	clients := make([]*router.NetworkClient, 0, len(s.sessions))
	for client := range s.sessions {
		if client == skip {
			continue
		}
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		s.send(client, msg)
	}
}

// currentLevel returns the active world data; world saves can swap it.
func (s *Server) currentLevel() *leveldata.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level
}

func (s *Server) pickSpawn() leveldata.SpawnPoint {
	level := s.currentLevel()
	points := level.SpawnPoints
	if len(points) == 0 {
		return level.DefaultSpawn()
	}

	s.mu.RLock()
	n := len(s.sessions)
	s.mu.RUnlock()
	return points[n%len(points)]
}

func newToken() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return ""
	}
	return hex.EncodeToString(b[:])
}
