package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
)

// UpdateEffects advances splat particles and fades, removing bursts
// whose lifetime has passed.
func (s *Simulation) UpdateEffects(e *ecs.ECS) {
	tick, ok := components.Tick.First(e.World)
	if !ok {
		return
	}
	td := components.Tick.Get(tick)
	dt := float32(td.Delta.Seconds())
	now := td.Now

	var done []*donburi.Entry
	components.SplatEffect.Each(e.World, func(entry *donburi.Entry) {
		splat := components.SplatEffect.Get(entry)

		for i := range splat.Particles {
			p := &splat.Particles[i]
			p.Velocity.Y -= cfg.Projectile.Gravity
			p.Position = p.Position.Add(p.Velocity)
		}

		finished := now.Sub(splat.CreatedAt) >= splat.Duration
		if splat.Fade != nil {
			var tweenDone bool
			splat.Alpha, tweenDone = splat.Fade.Update(dt)
			finished = finished || tweenDone
		}
		if finished {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}

	if marker, ok := components.HitMarker.First(e.World); ok {
		m := components.HitMarker.Get(marker)
		if m.Fade != nil {
			m.Alpha, _ = m.Fade.Update(dt)
		}
	}
}
