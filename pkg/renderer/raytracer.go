package renderer

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// Config contains preview rendering configuration
type Config struct {
	Workers int     // Number of goroutines; 0 means one per CPU
	Ambient float64 // Light reaching surfaces facing away from the camera, in [0, 1]
	TMin    float64 // Hits closer than this are ignored
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		Ambient: 0.15,
		TMin:    1e-6,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() geometry.Camera
	GetDimensions() geometry.Dimensions
	GetBackground() core.Color
	Intersect(ray core.Ray, tMin float64) (geometry.Collision, bool)
}

// Raytracer casts one primary ray per pixel and shades the closest hit
type Raytracer struct {
	scene  Scene
	config Config
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{scene: scene, config: config}
}

// TraceRay returns the preview color seen along ray
func (rt *Raytracer) TraceRay(ray core.Ray) (core.Color, bool) {
	hit, ok := rt.scene.Intersect(ray, rt.config.TMin)
	if !ok {
		return rt.scene.GetBackground(), false
	}
	return rt.shade(ray, hit), true
}

// shade lights the surface from the camera position: full brightness when
// facing the ray, falling to the ambient level at grazing angles
func (rt *Raytracer) shade(ray core.Ray, hit geometry.Collision) core.Color {
	normal, err := hit.Normal(ray).Normalize()
	if err != nil {
		return hit.Color.Multiply(rt.config.Ambient)
	}
	direction, err := ray.Direction.Normalize()
	if err != nil {
		return hit.Color.Multiply(rt.config.Ambient)
	}

	cosTheta := -direction.Dot(normal)
	surviving := 1 - hit.Triangle.Material.Absorption
	intensity := rt.config.Ambient + (1-rt.config.Ambient)*cosTheta*surviving
	return hit.Color.Multiply(intensity).Clamp()
}

// RenderRow renders row y into img
func (rt *Raytracer) RenderRow(y int, img *image.RGBA) RenderStats {
	cam := rt.scene.GetCamera()
	dims := rt.scene.GetDimensions()
	stats := RenderStats{}

	for x := 0; x < dims.Width; x++ {
		c, hit := rt.TraceRay(CameraRay(cam, dims, x, y))
		img.SetRGBA(x, y, c.ToRGBA())
		stats.Rays++
		if hit {
			stats.Hits++
		}
	}
	return stats
}

// Render renders the whole image, spreading rows across the worker pool
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	dims := rt.scene.GetDimensions()
	img := image.NewRGBA(image.Rect(0, 0, dims.Width, dims.Height))

	pool := NewWorkerPool(rt, img, rt.config.Workers)
	pool.Start()
	for y := 0; y < dims.Height; y++ {
		pool.SubmitTask(RowTask{Ctx: ctx, Y: y})
	}
	pool.Stop()

	var total RenderStats
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		total.Add(result.Stats)
	}
	total.Duration = time.Since(startTime)

	if firstErr != nil {
		return nil, total, firstErr
	}

	log.Printf("renderer: %dx%d with %d workers: %d rays, %d hits in %v",
		dims.Width, dims.Height, pool.GetNumWorkers(), total.Rays, total.Hits, total.Duration)
	return img, total, nil
}
