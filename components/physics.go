package components

import (
	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// PhysicsData holds per-entity movement state. OnGround reflects the
// current frame's ground probe; WasOnGround is last frame's value and
// feeds the one-frame jump grace.
type PhysicsData struct {
	Velocity    gamemath.Vec3
	OnGround    bool
	WasOnGround bool

	// SurfaceY is the height of the surface the entity stands on, valid
	// only while OnGround.
	SurfaceY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// CanJump reports whether a jump input should be honored: grounded now,
// or grounded on the previous frame (grace for discrete ground checks).
func (p *PhysicsData) CanJump() bool {
	return p.OnGround || p.WasOnGround
}
