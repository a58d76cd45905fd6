package geometry

import (
	"github.com/df07/go-raycore/pkg/core"
)

// Collision records where a ray met a triangle. Triangle points at scene-owned
// data; Point, Distance and T are only meaningful for the ray that produced them.
type Collision struct {
	Triangle *Triangle
	Color    core.Color
	Point    core.Vec3
	Distance float64 // Euclidean distance from the ray origin
	T        float64 // Ray parameter
}

// NewCollision builds the record for a confirmed intersection at parameter t
func NewCollision(ray core.Ray, tri *Triangle, t float64) Collision {
	return Collision{
		Triangle: tri,
		Color:    tri.Material.Color,
		Point:    ray.At(t),
		Distance: t * ray.Direction.Length(),
		T:        t,
	}
}

// Normal returns the triangle's plane normal flipped to face the incoming ray
func (c Collision) Normal(ray core.Ray) core.Vec3 {
	n := c.Triangle.Plane.Normal
	if ray.Direction.Dot(n) > 0 {
		return n.Negate()
	}
	return n
}
