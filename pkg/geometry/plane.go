package geometry

import (
	"errors"

	"github.com/df07/go-raycore/pkg/core"
)

// ErrDegeneratePlane is returned when three points do not span a plane
var ErrDegeneratePlane = errors.New("degenerate plane")

// Plane represents an infinite plane a·x + b·y + c·z + d = 0 with Normal = (a, b, c).
// The normal should be non-zero but need not be unit length.
type Plane struct {
	Normal core.Vec3
	D      float64
}

// NewPlane creates a new plane from its normal and offset
func NewPlane(normal core.Vec3, d float64) Plane {
	return Plane{Normal: normal, D: d}
}

// NewPlaneFromPoints creates the plane through a, b and c. The normal follows
// the winding a -> b -> c and has length equal to twice the triangle's area.
func NewPlaneFromPoints(a, b, c core.Vec3) (Plane, error) {
	normal := b.Subtract(a).Cross(c.Subtract(a))
	if normal.IsZero() || !normal.IsFinite() {
		return Plane{}, ErrDegeneratePlane
	}
	return Plane{Normal: normal, D: -normal.Dot(a)}, nil
}

// Evaluate returns n·p + d: zero on the plane, positive on the side the normal points to
func (p Plane) Evaluate(point core.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}
