// Package leveldata defines the world file format shared by the server,
// the client and the editor backend: placed objects with collision
// bounds, item spawners, portals and player spawn points. The format is
// plain JSON (world.json).
package leveldata

import "github.com/carllapierre/foodfight/shared/gamemath"

// World is the root of a world.json document.
type World struct {
	Name        string       `json:"name"`
	Objects     []Object     `json:"objects"`
	Spawners    []Spawner    `json:"spawners"`
	Portals     []Portal     `json:"portals"`
	SpawnPoints []SpawnPoint `json:"spawnPoints"`
}

// Object groups all placed instances of one catalog entry.
type Object struct {
	ID         string     `json:"id"`
	Collidable bool       `json:"collidable"`
	Instances  []Instance `json:"instances"`
}

// Instance is one placement of an object in the world.
type Instance struct {
	Position  gamemath.Vec3 `json:"position"`
	RotationY float64       `json:"rotationY"`
	Scale     float64       `json:"scale"`
	// HalfExtents is the object's bounding half-size before scaling.
	HalfExtents gamemath.Vec3 `json:"halfExtents"`
}

// Bounds returns the instance's world-space bounding box.
func (i Instance) Bounds() gamemath.AABB {
	scale := i.Scale
	if scale == 0 {
		scale = 1
	}
	return gamemath.NewAABB(i.Position, i.HalfExtents.Scale(scale))
}

// Spawner periodically makes an item available for pickup.
type Spawner struct {
	ItemType       string        `json:"itemType"`
	Position       gamemath.Vec3 `json:"position"`
	RespawnSeconds float64       `json:"respawnSeconds"`
}

// Portal teleports a player standing within Radius of Position to Target.
type Portal struct {
	Name     string        `json:"name"`
	Position gamemath.Vec3 `json:"position"`
	Target   gamemath.Vec3 `json:"target"`
	Radius   float64       `json:"radius"`
}

// SpawnPoint is a candidate respawn location.
type SpawnPoint struct {
	Position gamemath.Vec3 `json:"position"`
	Yaw      float64       `json:"yaw"`
}

// CollidableBounds returns the bounding boxes of every collidable
// instance in the world, in stable order.
func (w *World) CollidableBounds() []gamemath.AABB {
	var bounds []gamemath.AABB
	for _, obj := range w.Objects {
		if !obj.Collidable {
			continue
		}
		for _, inst := range obj.Instances {
			bounds = append(bounds, inst.Bounds())
		}
	}
	return bounds
}

// DefaultSpawn returns the first spawn point, or the origin if none are
// defined.
func (w *World) DefaultSpawn() SpawnPoint {
	if len(w.SpawnPoints) > 0 {
		return w.SpawnPoints[0]
	}
	return SpawnPoint{Position: gamemath.Vec3{Y: 0}}
}
