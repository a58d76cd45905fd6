package core

import (
	"image/color"
	"math"
)

// Color is an RGB color with channels conventionally in [0, 1]. There is no alpha channel.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Multiply scales every channel by s
func (c Color) Multiply(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Clamp limits every channel to [0, 1]. NaN channels become 0.
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return max(0, min(1, v))
}

// ToRGBA converts the color to an opaque 8-bit image color
func (c Color) ToRGBA() color.RGBA {
	cc := c.Clamp()
	return color.RGBA{
		R: uint8(math.Round(cc.R * 255)),
		G: uint8(math.Round(cc.G * 255)),
		B: uint8(math.Round(cc.B * 255)),
		A: 255,
	}
}
