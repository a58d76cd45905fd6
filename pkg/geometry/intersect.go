package geometry

import (
	"github.com/df07/go-raycore/pkg/core"
)

// RayPlaneIntersectionT returns the ray parameter t at which ray meets plane.
//
// Substituting origin + t·direction into a·x + b·y + c·z + d = 0 gives
// t = -(n·origin + d) / (n·direction). When n·direction is exactly zero the ray
// is parallel to the plane (possibly lying in it) and (0, false) is returned.
// Negative t is a valid result meaning the plane lies behind the origin;
// filtering by t is left to the caller.
func RayPlaneIntersectionT(ray core.Ray, plane Plane) (float64, bool) {
	denominator := ray.Direction.Dot(plane.Normal)
	if denominator == 0 {
		return 0, false
	}

	right := plane.Normal.Dot(ray.Origin) + plane.D
	left := -denominator
	return right / left, true
}

// RayTriangleIntersectionT intersects ray with the triangle's plane and keeps
// the result only when the hit point lies within the triangle, boundary included.
// Like RayPlaneIntersectionT it does not reject negative t.
func RayTriangleIntersectionT(ray core.Ray, tri Triangle) (float64, bool) {
	t, ok := RayPlaneIntersectionT(ray, tri.Plane)
	if !ok {
		return 0, false
	}
	if !tri.ContainsPoint(ray.At(t)) {
		return 0, false
	}
	return t, true
}

// Hit tests the ray against the triangle and reports a collision when t lies in [tMin, tMax]
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Collision, bool) {
	tHit, ok := RayTriangleIntersectionT(ray, *t)
	if !ok || tHit < tMin || tHit > tMax {
		return Collision{}, false
	}
	return NewCollision(ray, t, tHit), true
}
