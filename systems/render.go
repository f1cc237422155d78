package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
)

// pixelsPerUnit sets the schematic view's zoom.
const pixelsPerUnit = 16.0

// DrawWorld renders a top-down schematic of the arena, centered on the
// local player: collidable bounds as outlined boxes, spawners and
// portals as markers, players as circles with a facing line, and
// projectiles and splat particles as dots.
func (s *Simulation) DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	local := s.LocalPlayer()
	var center struct{ x, z float64 }
	if local != nil {
		pos := components.Transform.Get(local).Position
		center.x, center.z = pos.X, pos.Z
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	toScreen := func(x, z float64) (float32, float32) {
		return float32(float64(w)/2 + (x-center.x)*pixelsPerUnit),
			float32(float64(h)/2 + (z-center.z)*pixelsPerUnit)
	}

	for _, b := range s.Level.CollidableBounds() {
		x0, z0 := toScreen(b.Min.X, b.Min.Z)
		x1, z1 := toScreen(b.Max.X, b.Max.Z)
		vector.StrokeRect(screen, x0, z0, x1-x0, z1-z0, 1,
			color.RGBA{90, 90, 110, 255}, false)
	}

	components.Spawner.Each(e.World, func(entry *donburi.Entry) {
		sp := components.Spawner.Get(entry)
		x, z := toScreen(sp.Position.X, sp.Position.Z)
		c := color.RGBA{70, 70, 70, 255}
		if sp.Available {
			c = color.RGBA{120, 220, 120, 255}
		}
		vector.DrawFilledRect(screen, x-3, z-3, 6, 6, c, false)
	})

	components.Portal.Each(e.World, func(entry *donburi.Entry) {
		portal := components.Portal.Get(entry)
		x, z := toScreen(portal.Position.X, portal.Position.Z)
		vector.StrokeCircle(screen, x, z, float32(portal.Radius*pixelsPerUnit), 1,
			color.RGBA{130, 90, 220, 255}, false)
	})

	playerQuery.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		tr := components.Transform.Get(entry)
		x, z := toScreen(tr.Position.X, tr.Position.Z)

		c := color.RGBA{230, 70, 70, 255}
		if player.IsLocal {
			c = color.RGBA{80, 160, 240, 255}
		}
		if entry.HasComponent(components.CombatState) &&
			components.CombatState.Get(entry).IsInDeathState {
			c.A = 90
		}

		r := float32(cfg.Player.CollisionRadius * pixelsPerUnit)
		vector.DrawFilledCircle(screen, x, z, r, c, false)

		// Facing line.
		fx := x + float32(math.Sin(tr.Yaw))*r*1.6
		fz := z + float32(math.Cos(tr.Yaw))*r*1.6
		vector.StrokeLine(screen, x, z, fx, fz, 1, color.White, false)
	})

	projectileDot := func(x, z float32, scale float64) {
		r := float32(0.2 * pixelsPerUnit)
		if scale > 0 {
			r *= float32(scale)
		}
		vector.DrawFilledCircle(screen, x, z, r, color.RGBA{240, 220, 120, 255}, false)
	}
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		x, z := toScreen(pos.X, pos.Z)
		projectileDot(x, z, components.Projectile.Get(entry).Scale)
	})
	components.NetProjectile.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		x, z := toScreen(pos.X, pos.Z)
		projectileDot(x, z, components.NetProjectile.Get(entry).Scale)
	})

	components.SplatEffect.Each(e.World, func(entry *donburi.Entry) {
		splat := components.SplatEffect.Get(entry)
		c := color.RGBA{splat.Color[0], splat.Color[1], splat.Color[2],
			uint8(float32(splat.Color[3]) * clamp01(splat.Alpha))}
		for _, p := range splat.Particles {
			x, z := toScreen(p.Position.X, p.Position.Z)
			vector.DrawFilledCircle(screen, x, z, 1.5, c, false)
		}
	})
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
