package geometry

import (
	"github.com/df07/go-raycore/pkg/core"
)

// Dimensions holds the width and height of an image in pixels
type Dimensions struct {
	Width, Height int
}

// NewDimensions creates a new Dimensions
func NewDimensions(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// AspectRatio returns width / height, or 0 when height is zero
func (d Dimensions) AspectRatio() float64 {
	if d.Height == 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// Pixels returns the total pixel count
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// Camera defines where camera rays originate and where they radiate.
// Rotation holds per-axis angles applied X, then Y, then Z to the default view
// direction (0, 0, -1). VFov and HFov are full field-of-view angles in radians.
type Camera struct {
	Origin   core.Vec3
	Rotation core.Vec3
	VFov     float64
	HFov     float64
}

// NewCamera creates a new camera
func NewCamera(origin, rotation core.Vec3, vfov, hfov float64) Camera {
	return Camera{
		Origin:   origin,
		Rotation: rotation,
		VFov:     vfov,
		HFov:     hfov,
	}
}

// Forward returns the camera's view direction
func (c Camera) Forward() core.Vec3 {
	return core.NewVec3(0, 0, -1).Rotate(c.Rotation)
}
