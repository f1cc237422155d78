package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/carllapierre/foodfight/shared/messages"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      esync.NetworkId
	reconnectToken string
	serverName     string
	tickRate       int
	worldName      string
	conn           *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	throwCh   chan messages.ProjectileThrowEvent
	hitCh     chan messages.PlayerHitEvent
	healthCh  chan messages.HealthUpdateEvent
	stateCh   chan messages.PlayerStateEvent
	deathCh   chan messages.DeathEvent
	respawnCh chan messages.RespawnEvent
	scoreCh   chan messages.ScoreUpdateEvent
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		throwCh:    make(chan messages.ProjectileThrowEvent, 8),
		hitCh:      make(chan messages.PlayerHitEvent, 8),
		healthCh:   make(chan messages.HealthUpdateEvent, 8),
		stateCh:    make(chan messages.PlayerStateEvent, 8),
		deathCh:    make(chan messages.DeathEvent, 4),
		respawnCh:  make(chan messages.RespawnEvent, 4),
		scoreCh:    make(chan messages.ScoreUpdateEvent, 4),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		token := c.reconnectToken
		c.mu.Unlock()

		payload, err := router.Serialize(messages.JoinRequest{
			Version:        version,
			PlayerName:     playerName,
			ReconnectToken: token,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to serialize join request: %w", err))
			return
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn != nil {
			if err := conn.Write(context.Background(), websocket.MessageBinary, payload); err != nil {
				c.setError(fmt.Errorf("failed to send join request: %w", err))
			}
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: networkID=%d server=%s tickRate=%d world=%s",
			msg.NetworkID, msg.ServerName, msg.TickRate, msg.WorldName)
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.reconnectToken = msg.ReconnectToken
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.worldName = msg.WorldName
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.ProjectileThrowEvent) {
		pushEvent(c.throwCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.PlayerHitEvent) {
		pushEvent(c.hitCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.HealthUpdateEvent) {
		pushEvent(c.healthCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.PlayerStateEvent) {
		pushEvent(c.stateCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.DeathEvent) {
		pushEvent(c.deathCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.RespawnEvent) {
		pushEvent(c.respawnCh, evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.ScoreUpdateEvent) {
		pushEvent(c.scoreCh, evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Connected reports whether the join handshake has completed. Network
// sends are skipped while false: the game degrades to local-only
// simulation rather than erroring.
func (c *Client) Connected() bool {
	return c.State() == StateJoinedGame
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

// LocalNetworkID returns the assigned network id as a plain uint.
func (c *Client) LocalNetworkID() uint {
	return uint(c.NetworkID())
}

func (c *Client) WorldName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.worldName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// SendMessage serializes and writes a message. Returns an error when not
// connected; callers in the simulation path treat that as "skip".
func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// SendProjectile reports a local throw. Best-effort.
func (c *Client) SendProjectile(evt messages.ProjectileThrowEvent) {
	c.sendBestEffort(evt)
}

// SendPlayerHit reports damage the local player dealt to a remote target.
func (c *Client) SendPlayerHit(evt messages.PlayerHitEvent) {
	c.sendBestEffort(evt)
}

// SendPlayerState announces a local state change.
func (c *Client) SendPlayerState(evt messages.PlayerStateEvent) {
	c.sendBestEffort(evt)
}

// SendKillAttribution credits the killer after a local death.
func (c *Client) SendKillAttribution(evt messages.KillAttributionEvent) {
	c.sendBestEffort(evt)
}

// SendConsume reports eating a held item.
func (c *Client) SendConsume(evt messages.ConsumeEvent) {
	c.sendBestEffort(evt)
}

// SendInput ships one frame of player input.
func (c *Client) SendInput(input messages.PlayerInput) {
	c.sendBestEffort(input)
}

func (c *Client) sendBestEffort(msg any) {
	if !c.Connected() {
		return
	}
	if err := c.SendMessage(msg); err != nil {
		log.Printf("[client] send failed: %v", err)
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainThrowEvents returns all pending remote throw events, non-blocking.
func (c *Client) DrainThrowEvents() []messages.ProjectileThrowEvent {
	return drainChan(c.throwCh)
}

// DrainHitEvents returns all pending hit events, non-blocking.
func (c *Client) DrainHitEvents() []messages.PlayerHitEvent {
	return drainChan(c.hitCh)
}

// DrainHealthUpdates returns all pending authoritative health updates.
func (c *Client) DrainHealthUpdates() []messages.HealthUpdateEvent {
	return drainChan(c.healthCh)
}

// DrainStateEvents returns all pending remote state changes.
func (c *Client) DrainStateEvents() []messages.PlayerStateEvent {
	return drainChan(c.stateCh)
}

// DrainDeathEvents returns all pending death events.
func (c *Client) DrainDeathEvents() []messages.DeathEvent {
	return drainChan(c.deathCh)
}

// DrainRespawnEvents returns all pending respawn events.
func (c *Client) DrainRespawnEvents() []messages.RespawnEvent {
	return drainChan(c.respawnCh)
}

// DrainScoreEvents returns all pending score updates.
func (c *Client) DrainScoreEvents() []messages.ScoreUpdateEvent {
	return drainChan(c.scoreCh)
}

func pushEvent[T any](ch chan T, evt T) {
	select {
	case ch <- evt:
	default:
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
