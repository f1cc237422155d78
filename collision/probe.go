// Package collision implements the player collision probe: ray tests
// against the world's collidable bounds, with a resolv space over XZ
// footprints as the cheap broad-phase reject.
package collision

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/carllapierre/foodfight/config"
	"github.com/carllapierre/foodfight/shared/gamemath"
)

const (
	tagCollidable = "collidable"

	// spaceScale converts world units to resolv space units.
	spaceScale  = 10.0
	spaceMargin = 8.0
	cellSize    = 16
)

// Probe tests candidate player positions against the world geometry.
// Positions are eye positions; feet are SnapHeight below.
type Probe struct {
	Radius     float64
	SnapHeight float64 // eye height above the standing surface

	bounds []gamemath.AABB
	space  *resolv.Space
	sensor *resolv.Object
	offX   float64
	offZ   float64

	// Surface memory: pure ray tests jitter at surface edges, so the
	// last detected surface keeps the player "standing" briefly.
	hasSurface    bool
	lastSurfaceY  float64
	lastSurfaceAt time.Time
}

// NewProbe builds a probe over the given collidable bounds.
func NewProbe(bounds []gamemath.AABB, radius, snapHeight float64) *Probe {
	p := &Probe{
		Radius:     radius,
		SnapHeight: snapHeight,
		bounds:     bounds,
	}

	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, b := range bounds {
		minX = math.Min(minX, b.Min.X)
		minZ = math.Min(minZ, b.Min.Z)
		maxX = math.Max(maxX, b.Max.X)
		maxZ = math.Max(maxZ, b.Max.Z)
	}
	if len(bounds) == 0 {
		minX, minZ, maxX, maxZ = 0, 0, 1, 1
	}

	p.offX = minX - spaceMargin
	p.offZ = minZ - spaceMargin
	w := int((maxX-p.offX+spaceMargin)*spaceScale) + cellSize
	h := int((maxZ-p.offZ+spaceMargin)*spaceScale) + cellSize
	p.space = resolv.NewSpace(w, h, cellSize, cellSize)

	for i, b := range bounds {
		obj := resolv.NewObject(
			(b.Min.X-p.offX)*spaceScale,
			(b.Min.Z-p.offZ)*spaceScale,
			(b.Max.X-b.Min.X)*spaceScale,
			(b.Max.Z-b.Min.Z)*spaceScale,
			tagCollidable,
		)
		obj.SetShape(resolv.NewRectangle(0, 0, (b.Max.X-b.Min.X)*spaceScale, (b.Max.Z-b.Min.Z)*spaceScale))
		obj.Data = i
		p.space.Add(obj)
	}

	// Sensor footprint covers the player plus the standing-ray offsets.
	reach := radius * 2 * 1.4 * spaceScale
	p.sensor = resolv.NewObject(0, 0, reach, reach, "sensor")
	p.sensor.SetShape(resolv.NewRectangle(0, 0, reach, reach))
	p.space.Add(p.sensor)

	return p
}

// candidates returns the bounds whose XZ footprint is near pos.
func (p *Probe) candidates(pos gamemath.Vec3) []gamemath.AABB {
	reach := p.Radius * 1.4
	p.sensor.X = (pos.X - reach - p.offX) * spaceScale
	p.sensor.Y = (pos.Z - reach - p.offZ) * spaceScale
	p.sensor.Update()

	check := p.sensor.Check(0, 0, tagCollidable)
	if check == nil {
		return nil
	}

	var near []gamemath.AABB
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok || idx < 0 || idx >= len(p.bounds) {
			continue
		}
		near = append(near, p.bounds[idx])
	}
	return near
}

// CheckCollision reports whether a candidate eye position would put the
// player inside (or too close to) world geometry. Rays go out along
// ±X, ±Z, +Y and -Y, plus one extra downward ray at body height while
// falling; a hit within HitToleranceFactor × radius rejects the move.
func (p *Probe) CheckCollision(candidate gamemath.Vec3, falling bool) bool {
	near := p.candidates(candidate)
	if len(near) == 0 {
		return false
	}

	tolerance := config.Probe.HitToleranceFactor * p.Radius
	body := candidate
	body.Y -= p.SnapHeight / 2

	rays := []gamemath.Ray{
		{Origin: body, Direction: gamemath.Vec3{X: 1}},
		{Origin: body, Direction: gamemath.Vec3{X: -1}},
		{Origin: body, Direction: gamemath.Vec3{Z: 1}},
		{Origin: body, Direction: gamemath.Vec3{Z: -1}},
		{Origin: candidate, Direction: gamemath.Vec3{Y: 1}},
		{Origin: candidate, Direction: gamemath.Vec3{Y: -1}},
	}
	if falling {
		rays = append(rays, gamemath.Ray{Origin: body, Direction: gamemath.Vec3{Y: -1}})
	}

	for _, ray := range rays {
		for _, b := range near {
			if dist, ok := ray.IntersectAABB(b); ok && dist < tolerance {
				return true
			}
		}
	}
	return false
}

// HitsGeometry reports whether a point (expanded by radius) is inside
// any collidable bound. Used for projectile-vs-scenery impacts.
func (p *Probe) HitsGeometry(pos gamemath.Vec3, radius float64) bool {
	for _, b := range p.candidates(pos) {
		if b.Expanded(radius).Contains(pos) {
			return true
		}
	}
	return false
}

// CheckStandingOnObject casts five downward rays (center plus four
// offsets of StandingRayOffset × radius) from the eye position. The
// nearest surface within StandingRayDistance is remembered; when no
// surface is seen, the memory still reports "standing" for
// SurfaceMemoryWindow as long as the feet stay within
// SurfaceMemoryHeight of the remembered surface.
func (p *Probe) CheckStandingOnObject(pos gamemath.Vec3, now time.Time) (bool, float64) {
	near := p.candidates(pos)

	off := config.Probe.StandingRayOffset * p.Radius
	origins := []gamemath.Vec3{
		pos,
		{X: pos.X + off, Y: pos.Y, Z: pos.Z},
		{X: pos.X - off, Y: pos.Y, Z: pos.Z},
		{X: pos.X, Y: pos.Y, Z: pos.Z + off},
		{X: pos.X, Y: pos.Y, Z: pos.Z - off},
	}

	best := math.Inf(1)
	found := false

	for _, origin := range origins {
		ray := gamemath.Ray{Origin: origin, Direction: gamemath.Vec3{Y: -1}}
		for _, b := range near {
			dist, ok := ray.IntersectAABB(b)
			if !ok || dist >= config.Probe.StandingRayDistance {
				continue
			}
			if dist < best {
				best = dist
				found = true
			}
		}
		// The floor plane at y=0 is always a surface.
		if origin.Y >= 0 && origin.Y < config.Probe.StandingRayDistance && origin.Y < best {
			best = origin.Y
			found = true
		}
	}

	if found {
		p.hasSurface = true
		p.lastSurfaceY = pos.Y - best
		p.lastSurfaceAt = now
		return true, p.lastSurfaceY
	}

	// Hysteresis: a surface seen within the memory window still counts
	// while the feet haven't drifted from it.
	if p.hasSurface && now.Sub(p.lastSurfaceAt) <= config.Probe.SurfaceMemoryWindow {
		feet := pos.Y - p.SnapHeight
		if math.Abs(feet-p.lastSurfaceY) <= config.Probe.SurfaceMemoryHeight {
			return true, p.lastSurfaceY
		}
	}

	return false, 0
}
