package folio3d

import (
	"testing"

	"github.com/chewxy/math32"
)

const tick = float32(1.0 / 60.0)

func approx(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func vecApprox(a, b Vector3, tolerance float32) bool {
	return approx(a.X, b.X, tolerance) && approx(a.Y, b.Y, tolerance) && approx(a.Z, b.Z, tolerance)
}

func TestVectorOps(t *testing.T) {

	sum := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))
	if sum != (Vector3{5, 7, 9}) {
		t.Errorf("add: got %v", sum)
	}

	cross := WorldRight.Cross(WorldUp)
	if !vecApprox(cross, WorldBackward, 1e-6) {
		t.Errorf("right x up should be backward, got %v", cross)
	}

	unit := NewVector3(3, 0, 4).Unit()
	if !approx(unit.Magnitude(), 1, 1e-6) {
		t.Errorf("unit magnitude: got %v", unit.Magnitude())
	}

	mid := NewVector3(0, 0, 0).Lerp(NewVector3(2, 4, 6), 0.5)
	if !vecApprox(mid, NewVector3(1, 2, 3), 1e-6) {
		t.Errorf("lerp: got %v", mid)
	}

	rotated := WorldRight.Rotate(WorldUp, math32.Pi/2)
	if !vecApprox(rotated, WorldForward, 1e-5) {
		t.Errorf("rotating right a quarter turn around up should face forward, got %v", rotated)
	}

}

func TestMatrixInversionRoundTrip(t *testing.T) {

	transform := NewMatrix4Rotate(0, 1, 0, 0.7).Mult(NewMatrix4Translate(3, -2, 5))

	point := NewVector3(1.5, 2.5, -4)
	back := transform.Inverted().MultVec(transform.MultVec(point))

	if !vecApprox(back, point, 1e-4) {
		t.Errorf("inverse round trip: got %v, want %v", back, point)
	}

}

func TestLookAtMatrixForward(t *testing.T) {

	from := NewVector3(0, 0, 5)
	to := NewVector3(0, 0, 0)

	rot := NewLookAtMatrix(from, to, WorldUp)

	if !vecApprox(rot.Forward(), WorldForward, 1e-5) {
		t.Errorf("looking down -Z should yield a forward of %v, got %v", WorldForward, rot.Forward())
	}

}

func TestWorldToScreenCenter(t *testing.T) {

	camera := NewCamera(640, 480)
	camera.SetLocalPosition(0, 0, 10)

	screen := camera.WorldToScreenPixels(NewVector3(0, 0, 0))

	if !approx(screen.X, 320, 0.5) || !approx(screen.Y, 240, 0.5) {
		t.Errorf("point straight ahead should project to the viewport center, got (%v, %v)", screen.X, screen.Y)
	}
	if screen.W <= 0 {
		t.Errorf("point in front of the camera should have positive W, got %v", screen.W)
	}

}

func TestScreenToWorldRoundTrip(t *testing.T) {

	camera := NewCamera(640, 480)
	camera.SetLocalPosition(1, 2, 10)

	world := NewVector3(-2, 1, 0)
	screen := camera.WorldToScreenPixels(world)

	depth := camera.WorldPosition().DistanceTo(world)
	back := camera.ScreenToWorldPixels(int(screen.X), int(screen.Y), depth)

	if !vecApprox(back, world, 0.1) {
		t.Errorf("screen round trip: got %v, want %v", back, world)
	}

}
