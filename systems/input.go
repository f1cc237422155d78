package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/network"
	"github.com/carllapierre/foodfight/shared/messages"
	"github.com/carllapierre/foodfight/shared/netconfig"
)

const (
	resendInterval  = 50 * time.Millisecond
	lookSensitivity = 0.004
)

type inputTracker struct {
	seq          uint32
	lastActions  [netconfig.ActionCount]bool
	lastSendTime time.Time

	lastCursorX int
	lastCursorY int
	hasCursor   bool
}

// NewInputSystem returns an ECS system that polls keyboard and mouse
// into the local player's input component, and ships input frames to
// the server when the state changes (with a periodic resend so a lost
// packet can't stick a key).
func NewInputSystem(net NetBus, prediction *network.PredictionBuffer) func(*ecs.ECS) {
	state := &inputTracker{}

	return func(e *ecs.ECS) {
		localPlayerQuery.Each(e.World, func(entry *donburi.Entry) {
			if !components.Player.Get(entry).IsLocal {
				return
			}
			in := components.Input.Get(entry)

			for a := netconfig.ActionID(0); a < netconfig.ActionCount; a++ {
				in.Current[a] = cfg.IsActionPressed(a)
			}

			x, y := ebiten.CursorPosition()
			if state.hasCursor {
				in.YawDelta = float64(x-state.lastCursorX) * lookSensitivity
				in.PitchDelta = float64(state.lastCursorY-y) * lookSensitivity
			}
			state.lastCursorX, state.lastCursorY = x, y
			state.hasCursor = true

			if net == nil || !net.Connected() {
				return
			}

			changed := in.Current != state.lastActions
			now := time.Now()
			if !changed && now.Sub(state.lastSendTime) < resendInterval {
				return
			}

			state.seq++
			input := messages.NewPlayerInput(state.seq)
			for a := netconfig.ActionID(0); a < netconfig.ActionCount; a++ {
				if in.Current[a] {
					input.Actions[a] = true
				}
			}
			tr := components.Transform.Get(entry)
			input.Yaw = tr.Yaw
			input.Pitch = tr.Pitch
			input.Timestamp = now.UnixMilli()

			net.SendInput(input)
			if prediction != nil {
				prediction.Store(input, tr.Position)
			}

			state.lastActions = in.Current
			state.lastSendTime = now
		})
	}
}
