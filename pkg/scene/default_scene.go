package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/loaders"
	"github.com/df07/go-raycore/pkg/material"
)

// HFovForAspect returns the horizontal field of view matching vfov at the given aspect ratio
func HFovForAspect(vfov, aspect float64) float64 {
	return 2 * math.Atan(math.Tan(vfov/2)*aspect)
}

// mustTriangle builds a triangle from hard-coded vertices; a degenerate one is a programming error
func mustTriangle(mat material.Material, a, b, c core.Vec3) geometry.Triangle {
	tri, err := geometry.NewTriangleFromVertices(mat, a, b, c)
	if err != nil {
		panic(err)
	}
	return tri
}

// NewGroundQuad creates two triangles forming a horizontal square at height y, facing up
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) []geometry.Triangle {
	h := size / 2
	p0 := core.NewVec3(center.X-h, center.Y, center.Z-h)
	p1 := core.NewVec3(center.X+h, center.Y, center.Z-h)
	p2 := core.NewVec3(center.X+h, center.Y, center.Z+h)
	p3 := core.NewVec3(center.X-h, center.Y, center.Z+h)
	return []geometry.Triangle{
		mustTriangle(mat, p0, p2, p1),
		mustTriangle(mat, p0, p3, p2),
	}
}

// NewPyramid creates a square-based pyramid standing on base with the given half width and height
func NewPyramid(base core.Vec3, halfWidth, height float64, mat material.Material) []geometry.Triangle {
	apex := base.Add(core.NewVec3(0, height, 0))
	c0 := base.Add(core.NewVec3(-halfWidth, 0, -halfWidth))
	c1 := base.Add(core.NewVec3(halfWidth, 0, -halfWidth))
	c2 := base.Add(core.NewVec3(halfWidth, 0, halfWidth))
	c3 := base.Add(core.NewVec3(-halfWidth, 0, halfWidth))
	return []geometry.Triangle{
		mustTriangle(mat, c3, c2, apex), // front
		mustTriangle(mat, c2, c1, apex), // right
		mustTriangle(mat, c1, c0, apex), // back
		mustTriangle(mat, c0, c3, apex), // left
		mustTriangle(mat, c0, c1, c2),   // base
		mustTriangle(mat, c0, c2, c3),
	}
}

func defaultCamera(dims geometry.Dimensions) geometry.Camera {
	vfov := 45 * math.Pi / 180
	return geometry.NewCamera(
		core.NewVec3(0, 1.2, 4),
		core.NewVec3(-0.2, 0, 0), // pitch slightly down
		vfov,
		HFovForAspect(vfov, dims.AspectRatio()),
	)
}

// NewDefaultScene creates a ground plane with a pyramid and a tilted panel
func NewDefaultScene(dims geometry.Dimensions) *Scene {
	s := New(defaultCamera(dims), dims)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 10, material.Matte(core.NewColor(0.6, 0.6, 0.55)))...)
	s.Add(NewPyramid(core.NewVec3(-0.6, 0, 0), 0.6, 1.2, material.Matte(core.NewColor(0.8, 0.3, 0.2)))...)

	panel := NewGroundQuad(core.NewVec3(0, 0, 0), 1, material.Metal(core.NewColor(0.3, 0.5, 0.8)))
	for i := range panel {
		panel[i].RotateAxis(core.AxisX, core.Vec3{}, math.Pi/2)
		panel[i].RotateAxis(core.AxisY, core.Vec3{}, -math.Pi/6)
		panel[i].Translate(core.NewVec3(0.9, 0.6, -0.3))
	}
	s.Add(panel...)

	return s
}

// NewPyramidScene creates a single pyramid turned 45 degrees about its own axis
func NewPyramidScene(dims geometry.Dimensions) *Scene {
	s := New(defaultCamera(dims), dims)
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 10, material.Matte(core.NewColor(0.5, 0.5, 0.5)))...)

	pyramid := NewPyramid(core.NewVec3(0, 0, 0), 0.8, 1.5, material.Matte(core.NewColor(0.9, 0.75, 0.3)))
	for i := range pyramid {
		pyramid[i].RotateAxis(core.AxisY, core.Vec3{}, math.Pi/4)
	}
	s.Add(pyramid...)

	return s
}

// NewMeshScene loads a mesh file, fits it into the bi-unit cube and places it above the ground
func NewMeshScene(path string, dims geometry.Dimensions) (*Scene, error) {
	triangles, err := loaders.LoadMesh(path, loaders.MeshOptions{
		Material:    material.Matte(core.NewColor(0.7, 0.7, 0.75)),
		FitUnitCube: true,
	})
	if err != nil {
		return nil, fmt.Errorf("mesh scene: %w", err)
	}

	s := New(defaultCamera(dims), dims)
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 10, material.Matte(core.NewColor(0.5, 0.5, 0.5)))...)
	for i := range triangles {
		triangles[i].Translate(core.NewVec3(0, 1, 0))
	}
	s.Add(triangles...)
	return s, nil
}
