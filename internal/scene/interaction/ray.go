package interaction

import (
	"math"

	"github.com/warehublabs/warehub-backend/internal/scene"
)

// Vec2 is a pixel-space pointer position.
type Vec2 struct {
	X float64
	Y float64
}

// Dist returns the euclidean distance between two pointer positions.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Vec3 is a world-space point or direction.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Ray is a world-space ray, usually unprojected from the pointer through the
// camera.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// hitGround intersects the ray with the y == 0 plane and tests the point
// against the zone rectangle. Returns the distance along the ray.
func (r Ray) hitGround(zone scene.HitZone) (float64, bool) {
	if r.Dir.Y == 0 {
		return 0, false
	}
	t := -r.Origin.Y / r.Dir.Y
	if t <= 0 {
		return 0, false
	}
	x := r.Origin.X + r.Dir.X*t
	z := r.Origin.Z + r.Dir.Z*t
	if !zone.Contains(x, z) {
		return 0, false
	}
	return t, true
}

// Nearest resolves the closest zone the ray intersects, if any.
func (r Ray) Nearest(zones []scene.HitZone) (scene.HitZone, int, bool) {
	bestIdx := -1
	bestDist := math.Inf(1)
	for i, zone := range zones {
		if dist, ok := r.hitGround(zone); ok && dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	if bestIdx < 0 {
		return scene.HitZone{}, -1, false
	}
	return zones[bestIdx], bestIdx, true
}
