package geometry

import (
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/material"
)

// Triangle represents a single triangle with its supporting plane and material.
// The vertices are expected to lie on Plane; this is a precondition, not checked.
type Triangle struct {
	Plane    Plane             // The plane the triangle sits on
	Material material.Material // What the triangle is made of
	A, B, C  core.Vec3         // The three vertices
}

// NewTriangle creates a triangle from fully specified components.
// All arguments are copied; later changes to the caller's values do not affect the triangle.
func NewTriangle(plane Plane, mat material.Material, a, b, c core.Vec3) Triangle {
	return Triangle{
		Plane:    plane,
		Material: mat,
		A:        a,
		B:        b,
		C:        c,
	}
}

// NewTriangleFromVertices creates a triangle whose plane is derived from its vertices
func NewTriangleFromVertices(mat material.Material, a, b, c core.Vec3) (Triangle, error) {
	plane, err := NewPlaneFromPoints(a, b, c)
	if err != nil {
		return Triangle{}, fmt.Errorf("triangle %v %v %v: %w", a, b, c, err)
	}
	return NewTriangle(plane, mat, a, b, c), nil
}

// RotateAxis rotates the triangle about center around the given axis.
// The plane normal turns with the vertices and the offset is recomputed from A.
func (t *Triangle) RotateAxis(axis core.Axis, center core.Vec3, radians float64) {
	t.A.RotateAxis(axis, center, radians)
	t.B.RotateAxis(axis, center, radians)
	t.C.RotateAxis(axis, center, radians)

	t.Plane.Normal.RotateAxis(axis, core.Vec3{}, radians)
	t.Plane.D = -t.Plane.Normal.Dot(t.A)
}

// Translate moves every vertex by offset and shifts the plane to match
func (t *Triangle) Translate(offset core.Vec3) {
	t.A.AddInPlace(offset)
	t.B.AddInPlace(offset)
	t.C.AddInPlace(offset)
	t.Plane.D -= t.Plane.Normal.Dot(offset)
}

// Centroid returns the average of the three vertices
func (t Triangle) Centroid() core.Vec3 {
	return t.A.Add(t.B).Add(t.C).Multiply(1.0 / 3.0)
}

// ContainsPoint reports whether p lies inside the triangle or on its boundary,
// assuming p is on the triangle's plane. Degenerate triangles contain nothing.
func (t Triangle) ContainsPoint(p core.Vec3) bool {
	// Orientation comes from the vertices so the test is independent of the plane's winding
	n := t.B.Subtract(t.A).Cross(t.C.Subtract(t.A))
	if n.IsZero() {
		return false
	}

	if t.B.Subtract(t.A).Cross(p.Subtract(t.A)).Dot(n) < 0 {
		return false
	}
	if t.C.Subtract(t.B).Cross(p.Subtract(t.B)).Dot(n) < 0 {
		return false
	}
	return t.A.Subtract(t.C).Cross(p.Subtract(t.C)).Dot(n) >= 0
}
