package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

// SplatParticle is one fragment of an impact burst.
type SplatParticle struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
}

// SplatEffectData is a short-lived particle burst at an impact point.
// Color scales with the attacker's streak (red, orange, yellow).
type SplatEffectData struct {
	Particles []SplatParticle
	Color     [4]uint8
	CreatedAt time.Time
	Duration  time.Duration
	Fade      *gween.Tween // alpha 1 -> 0 over Duration
	Alpha     float32
}

var SplatEffect = donburi.NewComponentType[SplatEffectData]()

// HitMarkerData drives the HUD cross shown when the local player lands
// a hit.
type HitMarkerData struct {
	ShownAt time.Time
	Streak  int
	Fade    *gween.Tween
	Alpha   float32
}

var HitMarker = donburi.NewComponentType[HitMarkerData]()
