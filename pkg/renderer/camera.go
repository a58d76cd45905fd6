package renderer

import (
	"math"

	"github.com/df07/go-raycore/pkg/core"
	"github.com/df07/go-raycore/pkg/geometry"
)

// CameraRay generates the ray through the center of pixel (x, y).
// Pixel (0, 0) is the top-left corner. The direction is not normalized.
func CameraRay(cam geometry.Camera, dims geometry.Dimensions, x, y int) core.Ray {
	u := (2*(float64(x)+0.5)/float64(dims.Width) - 1) * math.Tan(cam.HFov/2)
	v := (1 - 2*(float64(y)+0.5)/float64(dims.Height)) * math.Tan(cam.VFov/2)

	direction := core.NewVec3(u, v, -1).Rotate(cam.Rotation)
	return core.NewRay(cam.Origin, direction)
}
