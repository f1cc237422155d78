package systems

import (
	"testing"
	"time"

	"github.com/carllapierre/foodfight/components"
	cfg "github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/leveldata"
)

func TestSpawnerPickupAndRefill(t *testing.T) {
	t.Parallel()

	level := testLevel()
	level.Spawners = []leveldata.Spawner{
		{ItemType: "banana", Position: gamemath.Vec3{}, RespawnSeconds: 1},
	}
	rig := newTestRig(t, level)

	// The local player spawns standing on the spawner.
	rig.step()

	inv := components.Inventory.Get(rig.local)
	if inv.Slots[0].ItemType != "banana" || inv.Slots[0].Count != 1 {
		t.Fatalf("player standing on spawner should pick the item up, slots = %+v", inv.Slots)
	}

	entry, _ := components.Spawner.First(rig.ecs.World)
	sp := components.Spawner.Get(entry)
	if sp.Available {
		t.Fatalf("spawner should be empty after pickup")
	}

	// After the respawn delay it refills and the player grabs another.
	rig.stepFor(time.Second + 32*time.Millisecond)
	if inv.Slots[0].Count != 2 {
		t.Fatalf("refilled spawner should hand out a second item, count = %d", inv.Slots[0].Count)
	}
}

func TestPortalTeleportsPlayer(t *testing.T) {
	t.Parallel()

	level := testLevel()
	level.Portals = []leveldata.Portal{
		{Name: "kitchen", Position: gamemath.Vec3{}, Target: gamemath.Vec3{X: 40, Z: 40}, Radius: 1.5},
	}
	rig := newTestRig(t, level)

	rig.step()

	tr := components.Transform.Get(rig.local)
	if tr.Position.X != 40 || tr.Position.Z != 40 {
		t.Fatalf("player inside portal radius should teleport, pos = %+v", tr.Position)
	}
	if tr.Position.Y != cfg.Player.EyeHeight {
		t.Fatalf("teleport should place the eye above the target, y = %v", tr.Position.Y)
	}
}
