// Package folio3d implements an interactive 3D portfolio scene widget
// rendered through Ebitengine. Two glTF models sit on a lit ground plane;
// hovering a model raises a colored point light next to it, and clicking a
// hovered model flies the camera over to it before signalling the selection
// to the host application.
//
// The widget is driven explicitly: the host calls Widget.Tick once per
// display frame and Widget.Draw to composite the result. Input events only
// latch state; all simulation happens inside Tick, so the widget can be
// driven (and tested) without a real display clock.
package folio3d

// WorldUp, WorldRight etc. represent global directions on folio3d's
// right-handed coordinate system (+X right, +Y up, +Z towards the viewer).
var (
	WorldUp       = NewVector3(0, 1, 0)
	WorldDown     = NewVector3(0, -1, 0)
	WorldRight    = NewVector3(1, 0, 0)
	WorldLeft     = NewVector3(-1, 0, 0)
	WorldBackward = NewVector3(0, 0, 1)
	WorldForward  = NewVector3(0, 0, -1)
)

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
