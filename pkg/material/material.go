package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-raycore/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for coefficients outside their physical range
var ErrInvalidMaterial = errors.New("invalid material")

// sumTolerance absorbs rounding when coefficients are written as decimal fractions
const sumTolerance = 1e-9

// Material describes how a surface interacts with light. The coefficients are
// consumed by a shading stage; the type itself does not enforce their ranges.
type Material struct {
	Color        core.Color
	Absorption   float64
	Reflection   float64
	Transmission float64
	Diffusion    float64
}

// NewMaterial creates a material. No validation is performed; see Validate.
func NewMaterial(color core.Color, absorption, reflection, transmission, diffusion float64) Material {
	return Material{
		Color:        color,
		Absorption:   absorption,
		Reflection:   reflection,
		Transmission: transmission,
		Diffusion:    diffusion,
	}
}

// Matte creates a mostly diffuse material
func Matte(color core.Color) Material {
	return NewMaterial(color, 0.1, 0, 0, 0.9)
}

// Metal creates a mostly reflective material
func Metal(color core.Color) Material {
	return NewMaterial(color, 0.1, 0.85, 0, 0.05)
}

// Dielectric creates a mostly transmissive material
func Dielectric(color core.Color) Material {
	return NewMaterial(color, 0.05, 0.1, 0.85, 0)
}

// Total returns the sum of the four coefficients
func (m Material) Total() float64 {
	return m.Absorption + m.Reflection + m.Transmission + m.Diffusion
}

// Validate checks that every coefficient lies in [0, 1] and that together they
// do not exceed 1, so the material conserves energy
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"absorption", m.Absorption},
		{"reflection", m.Reflection},
		{"transmission", m.Transmission},
		{"diffusion", m.Diffusion},
	}
	for _, c := range coefficients {
		if !(c.value >= 0 && c.value <= 1) {
			return fmt.Errorf("%w: %s %g outside [0, 1]", ErrInvalidMaterial, c.name, c.value)
		}
	}
	if total := m.Total(); total > 1+sumTolerance {
		return fmt.Errorf("%w: coefficients sum to %g", ErrInvalidMaterial, total)
	}
	return nil
}
