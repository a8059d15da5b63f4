package folio3d

import (
	"github.com/chewxy/math32"
)

// OrbitControls rotates a Camera around a fixed target point in response to
// pointer drags. The controls are rotate-only: panning and zooming are not
// supported, and the polar (elevation) angle is clamped to a single fixed
// value, so the camera rides a horizontal ring around the target. Rotation
// is damped; releasing a drag lets the camera glide to a stop.
type OrbitControls struct {
	Camera *Camera
	// Target is the world position the camera orbits around and looks at.
	Target Vector3
	// Distance is the fixed orbit radius.
	Distance float32
	// PolarAngle is the fixed elevation of the orbit ring, in radians, with
	// 0 directly above the target and pi/2 level with it.
	PolarAngle float32
	// RotateSpeed scales pointer movement (in pixels) into azimuth rotation
	// (in radians).
	RotateSpeed float32
	// Damping is the exponential decay rate of the rotation velocity, per
	// second.
	Damping float32
	// Enabled suspends the controls when false; pointer state is still
	// latched, but Update doesn't reposition the camera.
	Enabled bool

	azimuth  float32
	velocity float32
	dragging bool
	lastX    int
}

// NewOrbitControls creates a new OrbitControls driving the provided Camera
// around the target at the distance and polar angle given.
func NewOrbitControls(camera *Camera, target Vector3, distance, polarAngle float32) *OrbitControls {

	orbit := &OrbitControls{
		Camera:      camera,
		Target:      target,
		Distance:    distance,
		PolarAngle:  polarAngle,
		RotateSpeed: 0.005,
		Damping:     6,
		Enabled:     true,
	}

	orbit.apply()

	return orbit

}

// SetPointerState latches the pointer's x position and button state for the
// next Update. Dragging horizontally feeds rotation velocity.
func (orbit *OrbitControls) SetPointerState(x int, down bool) {

	if down && orbit.dragging {
		orbit.velocity = float32(x-orbit.lastX) * orbit.RotateSpeed * 60
	}

	orbit.dragging = down
	orbit.lastX = x

}

// Azimuth returns the current orbit angle around the target, in radians.
func (orbit *OrbitControls) Azimuth() float32 {
	return orbit.azimuth
}

// Velocity returns the current rotation velocity, in radians per second.
func (orbit *OrbitControls) Velocity() float32 {
	return orbit.velocity
}

// Update advances the orbit by the elapsed time given, applying the damped
// rotation velocity and repositioning the camera on its ring. Does nothing
// while the controls are disabled.
func (orbit *OrbitControls) Update(dt float32) {

	if !orbit.Enabled {
		return
	}

	orbit.azimuth += orbit.velocity * dt

	// Exponential decay keeps the glide framerate-independent.
	orbit.velocity *= math32.Exp(-orbit.Damping * dt)
	if math32.Abs(orbit.velocity) < 1e-4 {
		orbit.velocity = 0
	}

	orbit.apply()

}

// apply positions and orients the camera from the current orbit angles.
func (orbit *OrbitControls) apply() {

	sp := math32.Sin(orbit.PolarAngle)

	pos := Vector3{
		X: orbit.Distance * sp * math32.Sin(orbit.azimuth),
		Y: orbit.Distance * math32.Cos(orbit.PolarAngle),
		Z: orbit.Distance * sp * math32.Cos(orbit.azimuth),
	}.Add(orbit.Target)

	orbit.Camera.SetLocalPositionVec(pos)

	// The camera looks down -Z, so its rotation's forward vector has to
	// point from the target back out to the camera.
	orbit.Camera.SetLocalRotation(NewLookAtMatrix(orbit.Target, pos, WorldUp))

}
