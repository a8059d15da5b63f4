package folio3d

import (
	"image/color"
)

// A Color represents a color, containing R, G, B, and A components, each
// expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components
// expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// AddRGB adds the value provided to the R, G, and B components of the Color,
// returning the result.
func (color Color) AddRGB(value float32) Color {
	color.R += value
	color.G += value
	color.B += value
	return color
}

// MultiplyRGB multiplies the R, G, and B components of the Color by the
// scalar provided, returning the result.
func (color Color) MultiplyRGB(scalar float32) Color {
	color.R *= scalar
	color.G *= scalar
	color.B *= scalar
	return color
}

// Mix mixes the calling Color with the other Color, mixed to the percentage
// given (ranging from 0 to 1), returning the result.
func (color Color) Mix(other Color, percentage float32) Color {

	p := clamp(percentage, 0, 1)

	color.R += (other.R - color.R) * p
	color.G += (other.G - color.G) * p
	color.B += (other.B - color.B) * p
	color.A += (other.A - color.A) * p

	return color

}

// Clamped returns a copy of the Color with all components clamped to the 0-1 range.
func (color Color) Clamped() Color {
	color.R = clamp(color.R, 0, 1)
	color.G = clamp(color.G, 0, 1)
	color.B = clamp(color.B, 0, 1)
	color.A = clamp(color.A, 0, 1)
	return color
}

// RGBA64 returns the Color as 4 float64 values, as consumed by Ebitengine's
// color scaling.
func (color Color) RGBA64() (float64, float64, float64, float64) {
	return float64(color.R), float64(color.G), float64(color.B), float64(color.A)
}

// toNRGBA converts 0-1 ranged float64 color components into a color.NRGBA.
func toNRGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(float32(r), 0, 1) * 255),
		G: uint8(clamp(float32(g), 0, 1) * 255),
		B: uint8(clamp(float32(b), 0, 1) * 255),
		A: uint8(clamp(float32(a), 0, 1) * 255),
	}
}
