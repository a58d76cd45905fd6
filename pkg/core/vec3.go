package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateVector is returned when an operation needs a non-zero, finite vector
var ErrDegenerateVector = errors.New("degenerate vector")

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Clone returns an independent copy of the vector
func (v Vec3) Clone() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// AddInPlace adds other to v componentwise
func (v *Vec3) AddInPlace(other Vec3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubtractInPlace subtracts other from v componentwise
func (v *Vec3) SubtractInPlace(other Vec3) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction.
// Zero-length and non-finite vectors yield ErrDegenerateVector rather than NaN components.
func (v Vec3) Normalize() (Vec3, error) {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vec3{}, ErrDegenerateVector
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, nil
}

// NormalizeInPlace scales v to unit length. v is left untouched on error.
func (v *Vec3) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether v and other are within tolerance of each other
func (v Vec3) ApproxEqual(other Vec3, tolerance float64) bool {
	return v.Subtract(other).Length() <= tolerance
}

// Transform replaces v with m·v, a regular matrix-vector product
func (v *Vec3) Transform(m mgl64.Mat3) {
	r := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	v.X, v.Y, v.Z = r[0], r[1], r[2]
}
