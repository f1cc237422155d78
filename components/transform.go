package components

import (
	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// TransformData is an entity's position and view angles.
type TransformData struct {
	Position gamemath.Vec3
	Yaw      float64 // radians, 0 = +Z
	Pitch    float64 // radians, positive looks up
}

var Transform = donburi.NewComponentType[TransformData]()

// Forward returns the unit vector the entity is looking along.
func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.DirectionFromYawPitch(t.Yaw, t.Pitch)
}
