package components

import (
	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/netconfig"
)

// InputData stores the current and previous frame's pressed state for
// all actions, plus this frame's look delta. The reading of devices
// happens in systems; this component stays graphics-free.
type InputData struct {
	Current  [netconfig.ActionCount]bool
	Previous [netconfig.ActionCount]bool

	YawDelta   float64
	PitchDelta float64
}

var Input = donburi.NewComponentType[InputData]()

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(a netconfig.ActionID) bool {
	return in.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(a netconfig.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// EndFrame rolls the current state into the previous slot.
func (in *InputData) EndFrame() {
	in.Previous = in.Current
	in.YawDelta = 0
	in.PitchDelta = 0
}
