package gamemath

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds a box from a center point and half extents.
func NewAABB(center, halfExtents Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Expanded returns the box grown by amount on all sides.
func (b AABB) Expanded(amount float64) AABB {
	e := Vec3{amount, amount, amount}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// Ray is a half-line from Origin along the unit Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// IntersectAABB returns the distance along the ray to the nearest
// intersection with the box (slab test). ok is false if the ray misses
// or the box is entirely behind the origin.
func (r Ray) IntersectAABB(b AABB) (dist float64, ok bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	axes := [3][3]float64{
		{r.Origin.X, r.Direction.X, 0},
		{r.Origin.Y, r.Direction.Y, 0},
		{r.Origin.Z, r.Direction.Z, 0},
	}
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		origin, dir := axes[i][0], axes[i][1]
		if dir == 0 {
			if origin < mins[i] || origin > maxs[i] {
				return 0, false
			}
			continue
		}
		t1 := (mins[i] - origin) / dir
		t2 := (maxs[i] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin is inside the box.
		return 0, true
	}
	return tMin, true
}

// SphereHit reports whether two points are within radius of each other,
// using squared distance to avoid the sqrt.
func SphereHit(a, b Vec3, radius float64) bool {
	return a.DistanceSqTo(b) <= radius*radius
}
