package folio3d

import (
	"github.com/chewxy/math32"
)

// Vector3 represents a 3D vector, used for positions, directions, and
// velocities. Functions that modify the calling Vector3 return modified
// copies, so method chaining works naturally:
// `result := a.Add(b).Scale(0.5)`.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3 with the other Vector3 added to it.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3 with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector3, scaled by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide returns a copy of the Vector3, divided by the given scalar.
func (vec Vector3) Divide(scalar float32) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// MultComp returns a copy of the Vector3, multiplied component-wise by the other Vector3.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Dot returns the dot product of the Vector3 and the other Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns the cross product of the calling Vector3 and the other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec

}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster
// than Magnitude() as it avoids the square root.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// DistanceTo returns the distance between the calling Vector3 and the other Vector3.
func (vec Vector3) DistanceTo(other Vector3) float32 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquaredTo returns the squared distance between the calling Vector3
// and the other Vector3.
func (vec Vector3) DistanceSquaredTo(other Vector3) float32 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector3, normalized to unit length. Zero vectors
// are returned unmodified.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Lerp returns a copy of the Vector3, linearly interpolated towards the other
// Vector3 by the percentage given (0-1, unclamped).
func (vec Vector3) Lerp(other Vector3, percent float32) Vector3 {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// Angle returns the angle in radians between the calling Vector3 and the
// other Vector3.
func (vec Vector3) Angle(other Vector3) float32 {
	d := clamp(vec.Unit().Dot(other.Unit()), -1, 1)
	return math32.Acos(d)
}

// Rotate returns a copy of the Vector3, rotated around the axis provided by
// the angle provided (in radians), using Rodrigues' rotation formula. The
// axis should be normalized for the result to make sense.
func (vec Vector3) Rotate(axis Vector3, angle float32) Vector3 {

	u := axis.Unit()
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)

	crossed := u.Cross(vec)
	d := u.Dot(vec)

	result := vec.Scale(cos)
	result = result.Add(crossed.Scale(sin))
	result = result.Add(u.Scale(d * (1 - cos)))

	return result

}

// SetX returns a copy of the Vector3 with the X component set to the value provided.
func (vec Vector3) SetX(x float32) Vector3 {
	vec.X = x
	return vec
}

// SetY returns a copy of the Vector3 with the Y component set to the value provided.
func (vec Vector3) SetY(y float32) Vector3 {
	vec.Y = y
	return vec
}

// SetZ returns a copy of the Vector3 with the Z component set to the value provided.
func (vec Vector3) SetZ(z float32) Vector3 {
	vec.Z = z
	return vec
}

// Equals returns true if the two Vector3s are close enough in all components.
func (vec Vector3) Equals(other Vector3) bool {
	const eps = 1e-6
	return math32.Abs(vec.X-other.X) <= eps &&
		math32.Abs(vec.Y-other.Y) <= eps &&
		math32.Abs(vec.Z-other.Z) <= eps
}

// IsZero returns true if all components of the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	const eps = 1e-6
	return math32.Abs(vec.X) <= eps && math32.Abs(vec.Y) <= eps && math32.Abs(vec.Z) <= eps
}

// Vector4 represents a 4D vector; it's primarily used internally when
// transforming points through projection matrices, where the W component
// carries the perspective divide.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vector3 returns the Vector4 as a Vector3, dropping the W component.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}
