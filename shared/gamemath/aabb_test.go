package gamemath

import (
	"math"
	"testing"
)

func TestRayIntersectAABBStraightOn(t *testing.T) {
	t.Parallel()

	box := AABB{Min: Vec3{-1, 0, 4}, Max: Vec3{1, 2, 6}}
	ray := Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{0, 0, 1}}

	dist, ok := ray.IntersectAABB(box)
	if !ok {
		t.Fatalf("expected hit, got miss")
	}
	if math.Abs(dist-4) > 1e-9 {
		t.Fatalf("expected distance 4, got %v", dist)
	}
}

func TestRayIntersectAABBMiss(t *testing.T) {
	t.Parallel()

	box := AABB{Min: Vec3{-1, 0, 4}, Max: Vec3{1, 2, 6}}

	cases := []struct {
		name string
		ray  Ray
	}{
		{"parallel offset", Ray{Origin: Vec3{5, 1, 0}, Direction: Vec3{0, 0, 1}}},
		{"behind origin", Ray{Origin: Vec3{0, 1, 10}, Direction: Vec3{0, 0, 1}}},
		{"zero axis outside", Ray{Origin: Vec3{0, 5, 0}, Direction: Vec3{0, 0, 1}}},
	}

	for _, tc := range cases {
		if _, ok := tc.ray.IntersectAABB(box); ok {
			t.Fatalf("%s: expected miss, got hit", tc.name)
		}
	}
}

func TestRayIntersectAABBOriginInside(t *testing.T) {
	t.Parallel()

	box := AABB{Min: Vec3{-1, -1, -1}, Max: Vec3{1, 1, 1}}
	ray := Ray{Origin: Vec3{}, Direction: Vec3{0, -1, 0}}

	dist, ok := ray.IntersectAABB(box)
	if !ok {
		t.Fatalf("expected hit from inside the box")
	}
	if dist != 0 {
		t.Fatalf("expected zero distance from inside, got %v", dist)
	}
}

func TestSphereHit(t *testing.T) {
	t.Parallel()

	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}

	if !SphereHit(a, b, 1.0) {
		t.Fatalf("points at distance 1 should hit with radius 1")
	}
	if SphereHit(a, b, 0.99) {
		t.Fatalf("points at distance 1 should miss with radius 0.99")
	}
}

func TestIntegrateProjectile(t *testing.T) {
	t.Parallel()

	pos := Vec3{0, 5, 0}
	vel := Vec3{1, 0, 0}

	pos, vel = IntegrateProjectile(pos, vel, 0.01)
	if vel.Y != -0.01 {
		t.Fatalf("gravity should decrement velocity.Y, got %v", vel.Y)
	}
	if pos.X != 1 || math.Abs(pos.Y-4.99) > 1e-9 {
		t.Fatalf("unexpected position after step: %+v", pos)
	}
}
