package factory

import (
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/archetypes"
	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
)

// StreakColor maps a consecutive-hit streak to the splat tint:
// red for a single hit, orange for two, yellow for three or more.
func StreakColor(streak int) [4]uint8 {
	switch {
	case streak >= 3:
		return [4]uint8{255, 220, 60, 255}
	case streak == 2:
		return [4]uint8{255, 140, 40, 255}
	default:
		return [4]uint8{220, 40, 40, 255}
	}
}

// CreateSplat spawns an impact particle burst at pos. Particle count
// grows with the streak.
func CreateSplat(ecs *ecs.ECS, pos gamemath.Vec3, streak int) *donburi.Entry {
	count := cfg.Effects.SplatParticleCount
	if streak > 1 {
		count += (streak - 1) * cfg.Effects.StreakParticleBonus
	}

	particles := make([]components.SplatParticle, count)
	for i := range particles {
		angle := rand.Float64() * 2 * math.Pi
		speed := 0.05 + rand.Float64()*0.08
		particles[i] = components.SplatParticle{
			Position: pos,
			Velocity: gamemath.Vec3{
				X: math.Cos(angle) * speed,
				Y: 0.06 + rand.Float64()*0.08,
				Z: math.Sin(angle) * speed,
			},
		}
	}

	splat := archetypes.Splat.Spawn(ecs)
	components.SplatEffect.SetValue(splat, components.SplatEffectData{
		Particles: particles,
		Color:     StreakColor(streak),
		CreatedAt: components.Now(ecs.World),
		Duration:  cfg.Effects.SplatDuration,
		Fade:      gween.New(1, 0, float32(cfg.Effects.SplatDuration.Seconds()), ease.OutQuad),
	})
	return splat
}

// ShowHitMarker flashes the HUD hit cross, reusing the singleton entity
// when one exists.
func ShowHitMarker(ecs *ecs.ECS, streak int) {
	now := components.Now(ecs.World)
	marker := components.HitMarkerData{
		ShownAt: now,
		Streak:  streak,
		Fade:    gween.New(1, 0, float32(cfg.Effects.HitMarkerDuration.Seconds()), ease.Linear),
	}

	if entry, ok := components.HitMarker.First(ecs.World); ok {
		components.HitMarker.SetValue(entry, marker)
		return
	}
	entry := archetypes.HitMarker.Spawn(ecs)
	components.HitMarker.SetValue(entry, marker)
}
