package config

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/carllapierre/foodfight/shared/netconfig"
)

// InputBinding represents the key bindings for a single action.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[netconfig.ActionID]InputBinding
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[netconfig.ActionID]InputBinding{
			netconfig.ActionMoveForward: {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
			netconfig.ActionMoveBack:    {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
			netconfig.ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
			netconfig.ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
			netconfig.ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace}},
			netconfig.ActionThrow:       {Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyEnter}},
			netconfig.ActionConsume:     {Keys: []ebiten.Key{ebiten.KeyE}},
			netconfig.ActionNextItem:    {Keys: []ebiten.Key{ebiten.KeyTab}},
			netconfig.ActionPrevItem:    {Keys: []ebiten.Key{ebiten.KeyQ}},
			netconfig.ActionPause:       {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}

// IsActionPressed reports whether any key bound to the action is held.
func IsActionPressed(action netconfig.ActionID) bool {
	binding, ok := Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
