package leveldata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carllapierre/foodfight/shared/gamemath"
)

func testWorld() *World {
	return &World{
		Name: "arena",
		Objects: []Object{
			{
				ID:         "crate",
				Collidable: true,
				Instances: []Instance{
					{Position: gamemath.Vec3{X: 2, Y: 0.5, Z: 3}, Scale: 2, HalfExtents: gamemath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
				},
			},
			{
				ID: "banner",
				Instances: []Instance{
					{Position: gamemath.Vec3{X: -4, Y: 3, Z: 0}, HalfExtents: gamemath.Vec3{X: 1, Y: 0.5, Z: 0.1}},
				},
			},
		},
		Spawners:    []Spawner{{ItemType: "tomato", Position: gamemath.Vec3{X: 1}, RespawnSeconds: 8}},
		SpawnPoints: []SpawnPoint{{Position: gamemath.Vec3{X: 0, Y: 0, Z: -5}, Yaw: 0}},
	}
}

func TestSaveAndLoadWorldRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "world.json")
	want := testWorld()

	if err := SaveWorld(path, want); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}

	got, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if got.Name != want.Name {
		t.Fatalf("name = %q, want %q", got.Name, want.Name)
	}
	if len(got.Objects) != 2 || len(got.Spawners) != 1 {
		t.Fatalf("unexpected world shape: %d objects, %d spawners", len(got.Objects), len(got.Spawners))
	}
}

func TestSaveWorldWritesBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "world.json")
	w := testWorld()

	if err := SaveWorld(path, w); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// First save has nothing to back up.
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Fatalf("backup should not exist after first save")
	}

	w.Name = "arena-v2"
	if err := SaveWorld(path, w); err != nil {
		t.Fatalf("second save: %v", err)
	}

	backup, err := LoadWorld(path + ".bak")
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	if backup.Name != "arena" {
		t.Fatalf("backup name = %q, want the pre-save contents", backup.Name)
	}

	current, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("load current: %v", err)
	}
	if current.Name != "arena-v2" {
		t.Fatalf("current name = %q, want arena-v2", current.Name)
	}
}

func TestCollidableBounds(t *testing.T) {
	t.Parallel()

	w := testWorld()
	bounds := w.CollidableBounds()

	// Only the crate is collidable; the banner is decoration.
	if len(bounds) != 1 {
		t.Fatalf("expected 1 collidable bound, got %d", len(bounds))
	}

	// Scale 2 doubles the half extents.
	b := bounds[0]
	if b.Min.X != 1 || b.Max.X != 3 {
		t.Fatalf("scaled bounds wrong: min %v max %v", b.Min, b.Max)
	}
}

func TestInstanceBoundsDefaultScale(t *testing.T) {
	t.Parallel()

	inst := Instance{Position: gamemath.Vec3{}, HalfExtents: gamemath.Vec3{X: 1, Y: 1, Z: 1}}
	b := inst.Bounds()
	if b.Min.X != -1 || b.Max.X != 1 {
		t.Fatalf("zero scale should default to 1: %+v", b)
	}
}
