// Package colors contains functions to quickly and easily generate
// folio3d.Color instances by name (i.e. "White()", "Amber()", etc).
package colors

import "github.com/aeriform/folio3d"

// Transparent generates a fully transparent folio3d.Color instance.
func Transparent() folio3d.Color {
	return folio3d.NewColor(0, 0, 0, 0)
}

// White generates a white folio3d.Color instance.
func White() folio3d.Color {
	return folio3d.NewColor(1, 1, 1, 1)
}

// Black generates a black folio3d.Color instance.
func Black() folio3d.Color {
	return folio3d.NewColor(0, 0, 0, 1)
}

// Gray generates a mid-gray folio3d.Color instance.
func Gray() folio3d.Color {
	return folio3d.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates a light-gray folio3d.Color instance.
func LightGray() folio3d.Color {
	return folio3d.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates a dark-gray folio3d.Color instance.
func DarkGray() folio3d.Color {
	return folio3d.NewColor(0.2, 0.2, 0.2, 1)
}

// Amber generates a warm amber folio3d.Color instance.
func Amber() folio3d.Color {
	return folio3d.NewColor(1, 0.75, 0.3, 1)
}

// SkyBlue generates a sky-blue folio3d.Color instance.
func SkyBlue() folio3d.Color {
	return folio3d.NewColor(0.4, 0.7, 1, 1)
}

// Midnight generates a deep blue-black folio3d.Color instance.
func Midnight() folio3d.Color {
	return folio3d.NewColor(0.05, 0.05, 0.1, 1)
}
