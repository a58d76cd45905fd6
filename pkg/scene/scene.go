package scene

import (
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// DefaultTMin discards hits closer than this to the ray origin (self-intersection)
const DefaultTMin = 1e-6

// Scene owns the triangles of a render plus the camera looking at them.
// Triangles must not be modified while a render is reading the scene.
type Scene struct {
	Camera     geometry.Camera
	Dimensions geometry.Dimensions
	Triangles  []geometry.Triangle
	Background core.Color
}

// New creates an empty scene
func New(camera geometry.Camera, dims geometry.Dimensions) *Scene {
	return &Scene{
		Camera:     camera,
		Dimensions: dims,
		Triangles:  make([]geometry.Triangle, 0),
		Background: core.NewColor(0.05, 0.05, 0.08),
	}
}

// Add appends triangles to the scene
func (s *Scene) Add(triangles ...geometry.Triangle) {
	s.Triangles = append(s.Triangles, triangles...)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() geometry.Camera {
	return s.Camera
}

// GetDimensions returns the image size the scene is framed for
func (s *Scene) GetDimensions() geometry.Dimensions {
	return s.Dimensions
}

// GetBackground returns the color seen by rays that hit nothing
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// GetPrimitiveCount returns the number of triangles in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Triangles)
}

// Validate checks the dimensions and every triangle's material
func (s *Scene) Validate() error {
	if s.Dimensions.Width <= 0 || s.Dimensions.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", s.Dimensions.Width, s.Dimensions.Height)
	}
	for i := range s.Triangles {
		if err := s.Triangles[i].Material.Validate(); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	return nil
}

// Intersect returns the collision with the smallest t greater than tMin
func (s *Scene) Intersect(ray core.Ray, tMin float64) (geometry.Collision, bool) {
	closest := -1
	closestT := 0.0
	for i := range s.Triangles {
		t, ok := geometry.RayTriangleIntersectionT(ray, s.Triangles[i])
		if !ok || t <= tMin {
			continue
		}
		if closest < 0 || t < closestT {
			closest = i
			closestT = t
		}
	}
	if closest < 0 {
		return geometry.Collision{}, false
	}
	return geometry.NewCollision(ray, &s.Triangles[closest], closestT), true
}

// RotateAxis rotates every triangle in the scene about center
func (s *Scene) RotateAxis(axis core.Axis, center core.Vec3, radians float64) {
	for i := range s.Triangles {
		s.Triangles[i].RotateAxis(axis, center, radians)
	}
}

// Center returns the average of all triangle centroids, or the origin for an empty scene
func (s *Scene) Center() core.Vec3 {
	var sum core.Vec3
	if len(s.Triangles) == 0 {
		return sum
	}
	for i := range s.Triangles {
		sum.AddInPlace(s.Triangles[i].Centroid())
	}
	return sum.Multiply(1 / float64(len(s.Triangles)))
}
