package renderer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/material"
	"github.com/df07/go-raycore/pkg/scene"
)

// MockScene implements Scene for testing
type MockScene struct {
	camera     geometry.Camera
	dims       geometry.Dimensions
	background core.Color
	hitFn      func(ray core.Ray, tMin float64) (geometry.Collision, bool)
}

func (m MockScene) GetCamera() geometry.Camera         { return m.camera }
func (m MockScene) GetDimensions() geometry.Dimensions { return m.dims }
func (m MockScene) GetBackground() core.Color          { return m.background }
func (m MockScene) Intersect(ray core.Ray, tMin float64) (geometry.Collision, bool) {
	return m.hitFn(ray, tMin)
}

func newHalfScene(t *testing.T) MockScene {
	t.Helper()
	tri, err := geometry.NewTriangleFromVertices(
		material.NewMaterial(core.NewColor(1, 0, 0), 0, 0, 0, 1),
		core.NewVec3(-10, -10, -1), core.NewVec3(10, -10, -1), core.NewVec3(0, 10, -1),
	)
	if err != nil {
		t.Fatal(err)
	}

	return MockScene{
		camera:     geometry.NewCamera(core.Vec3{}, core.Vec3{}, math.Pi/2, math.Pi/2),
		dims:       geometry.NewDimensions(4, 2),
		background: core.NewColor(0, 0, 1),
		hitFn: func(ray core.Ray, tMin float64) (geometry.Collision, bool) {
			// Only the left half of the image sees the triangle
			if ray.Direction.X >= 0 {
				return geometry.Collision{}, false
			}
			return tri.Hit(ray, tMin, math.Inf(1))
		},
	}
}

func TestRaytracer_Render(t *testing.T) {
	s := newHalfScene(t)
	config := DefaultConfig()
	config.Workers = 2
	rt := NewRaytracer(s, config)

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.Rays != 8 || stats.Hits != 4 {
		t.Errorf("Expected 8 rays and 4 hits, got %d and %d", stats.Rays, stats.Hits)
	}
	if stats.HitRatio() != 0.5 {
		t.Errorf("Expected hit ratio 0.5, got %f", stats.HitRatio())
	}

	background := s.background.ToRGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			got := img.RGBAAt(x, y)
			if x < 2 {
				if got.R == 0 || got.G != 0 || got.B != 0 {
					t.Errorf("Pixel (%d,%d): expected shaded red, got %v", x, y, got)
				}
			} else if got != background {
				t.Errorf("Pixel (%d,%d): expected background %v, got %v", x, y, background, got)
			}
		}
	}
}

func TestRaytracer_ShadeFacingVsGrazing(t *testing.T) {
	s := newHalfScene(t)
	rt := NewRaytracer(s, DefaultConfig())

	tri, _ := geometry.NewTriangleFromVertices(
		material.NewMaterial(core.NewColor(1, 1, 1), 0, 0, 0, 1),
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0),
	)

	head := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	grazing := core.NewRay(core.NewVec3(-5, 0, 0.1), core.NewVec3(50, 0, -1))

	headOn := rt.shade(head, geometry.NewCollision(head, &tri, 1))
	if math.Abs(headOn.R-1) > 1e-9 {
		t.Errorf("Expected full intensity head-on, got %v", headOn)
	}

	tGrazing, ok := geometry.RayTriangleIntersectionT(grazing, tri)
	if !ok {
		t.Fatal("Expected grazing ray to hit")
	}
	dim := rt.shade(grazing, geometry.NewCollision(grazing, &tri, tGrazing))
	if dim.R >= headOn.R || dim.R < DefaultConfig().Ambient {
		t.Errorf("Expected grazing intensity between ambient and head-on, got %v", dim)
	}
}

func TestRaytracer_RenderCancelled(t *testing.T) {
	rt := NewRaytracer(newHalfScene(t), DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from a cancelled render")
	}
}

func TestRaytracer_RenderBuiltinScene(t *testing.T) {
	s, err := scene.Create("default", geometry.NewDimensions(32, 18))
	if err != nil {
		t.Fatalf("failed to create scene: %v", err)
	}

	rt := NewRaytracer(s, DefaultConfig())
	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 18 {
		t.Errorf("Unexpected image size %v", img.Bounds())
	}
	if stats.Hits == 0 {
		t.Error("Expected the default scene to be visible")
	}
	if stats.Rays != 32*18 {
		t.Errorf("Expected one ray per pixel, got %d", stats.Rays)
	}
}

func TestWorkerPool_DefaultsToNumCPU(t *testing.T) {
	rt := NewRaytracer(newHalfScene(t), DefaultConfig())
	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	pool := NewWorkerPool(rt, img, 0)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.GetNumWorkers())
	}
}
