package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis names one of the three principal axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis converts "x", "y" or "z" to an Axis
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// AxisRotation returns the right-handed rotation matrix for the given axis.
// A positive angle turns counter-clockwise when looking from the positive axis toward the origin.
func AxisRotation(axis Axis, radians float64) mgl64.Mat3 {
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(radians)
	case AxisY:
		return mgl64.Rotate3DY(radians)
	case AxisZ:
		return mgl64.Rotate3DZ(radians)
	default:
		return mgl64.Ident3()
	}
}

// RotateAxis rotates v about center around the given axis
func (v *Vec3) RotateAxis(axis Axis, center Vec3, radians float64) {
	v.SubtractInPlace(center)
	v.Transform(AxisRotation(axis, radians))
	v.AddInPlace(center)
}

// RotateX rotates v about center around the X axis
func (v *Vec3) RotateX(center Vec3, radians float64) {
	v.RotateAxis(AxisX, center, radians)
}

// RotateY rotates v about center around the Y axis
func (v *Vec3) RotateY(center Vec3, radians float64) {
	v.RotateAxis(AxisY, center, radians)
}

// RotateZ rotates v about center around the Z axis
func (v *Vec3) RotateZ(center Vec3, radians float64) {
	v.RotateAxis(AxisZ, center, radians)
}

// Rotate returns v rotated about the origin by the per-axis angles in rotation,
// applied X first, then Y, then Z
func (v Vec3) Rotate(rotation Vec3) Vec3 {
	var origin Vec3
	r := v
	r.RotateX(origin, rotation.X)
	r.RotateY(origin, rotation.Y)
	r.RotateZ(origin, rotation.Z)
	return r
}
