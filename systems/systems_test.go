package systems

import (
	"testing"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/registry"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/leveldata"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

// testLevel has a flat floor plane plus one 2x2x2 crate with faces at
// x=2..4, y=0..2, z=-1..1.
func testLevel() *leveldata.World {
	return &leveldata.World{
		Name: "test",
		Objects: []leveldata.Object{
			{
				ID:         "crate",
				Collidable: true,
				Instances: []leveldata.Instance{
					{
						Position:    gamemath.Vec3{X: 3, Y: 1, Z: 0},
						Scale:       1,
						HalfExtents: gamemath.Vec3{X: 1, Y: 1, Z: 1},
					},
				},
			},
		},
	}
}

type testRig struct {
	sim   *Simulation
	ecs   *ecs.ECS
	clock *fakeClock
	local *donburi.Entry
}

func newTestRig(t *testing.T, level *leveldata.World) *testRig {
	t.Helper()

	clock := &fakeClock{now: time.UnixMilli(1_000_000)}
	e := ecs.NewECS(donburi.NewWorld())
	sim := NewSimulation(e, clock, registry.Default(), level, nil, nil)
	local := sim.SpawnLocalPlayer("1", "tester")

	return &testRig{sim: sim, ecs: e, clock: clock, local: local}
}

// step advances the clock one nominal frame and updates the world.
func (r *testRig) step() {
	r.clock.advance(16 * time.Millisecond)
	r.ecs.Update()
}

// stepFor runs whole frames until at least d has elapsed.
func (r *testRig) stepFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 16 * time.Millisecond {
		r.step()
	}
}

// stepExact advances world time by exactly d. Frame deltas clamp at
// MaxFrameDelta, so the jump is split into clamp-sized frames.
func (r *testRig) stepExact(d time.Duration) {
	for d > 0 {
		step := gamemath.MaxFrameDelta
		if d < step {
			step = d
		}
		r.clock.advance(step)
		r.ecs.Update()
		d -= step
	}
}

func (r *testRig) addRemotePlayer(id string, pos gamemath.Vec3) *donburi.Entry {
	entry := r.ecs.World.Entry(r.ecs.World.Create(
		components.Player,
		components.Transform,
		components.Physics,
		components.Health,
		components.CombatState,
		components.HitCooldown,
	))
	components.Player.SetValue(entry, components.PlayerData{ID: id, Name: id})
	components.Transform.SetValue(entry, components.TransformData{Position: pos})
	components.Health.SetValue(entry, components.NewHealthData(cfg.Player.Health))
	components.CombatState.SetValue(entry, components.CombatStateData{
		RespawnCountdown: cfg.Player.RespawnCountdown,
	})
	components.HitCooldown.SetValue(entry, components.NewHitCooldownData())
	return entry
}

func countEntities(e *ecs.ECS, ct interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	ct.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
