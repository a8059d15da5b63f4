package folio3d

import (
	"github.com/chewxy/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation, laid
// out in row-major order.
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new Matrix4 translated by the x, y, and z values provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, scaled by the x, y, and z values provided.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 rotated around the axis given by x,
// y, and z by the angle provided (in radians).
func NewMatrix4Rotate(x, y, z, angle float32) Matrix4 {

	mat := NewMatrix4()
	vec := NewVector3(x, y, z).Unit()
	s := math32.Sin(angle)
	c := math32.Cos(angle)
	m := 1 - c

	mat[0][0] = m*vec.X*vec.X + c
	mat[0][1] = m*vec.X*vec.Y + vec.Z*s
	mat[0][2] = m*vec.Z*vec.X - vec.Y*s

	mat[1][0] = m*vec.X*vec.Y - vec.Z*s
	mat[1][1] = m*vec.Y*vec.Y + c
	mat[1][2] = m*vec.Y*vec.Z + vec.X*s

	mat[2][0] = m*vec.Z*vec.X + vec.Y*s
	mat[2][1] = m*vec.Y*vec.Z - vec.X*s
	mat[2][2] = m*vec.Z*vec.Z + c

	return mat

}

// Right returns the right-facing direction of the Matrix4 (the first row), normalized.
func (matrix Matrix4) Right() Vector3 {
	return Vector3{matrix[0][0], matrix[0][1], matrix[0][2]}.Unit()
}

// Up returns the upward direction of the Matrix4 (the second row), normalized.
func (matrix Matrix4) Up() Vector3 {
	return Vector3{matrix[1][0], matrix[1][1], matrix[1][2]}.Unit()
}

// Forward returns the forward direction of the Matrix4 (the third row), normalized.
func (matrix Matrix4) Forward() Vector3 {
	return Vector3{matrix[2][0], matrix[2][1], matrix[2][2]}.Unit()
}

// Row returns the indiced row of the Matrix4 as a Vector4.
func (matrix Matrix4) Row(rowIndex int) Vector4 {
	r := matrix[rowIndex]
	return Vector4{r[0], r[1], r[2], r[3]}
}

// SetRow sets the indiced row of the Matrix4 to the Vector4 provided.
func (matrix *Matrix4) SetRow(rowIndex int, vec Vector4) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
	matrix[rowIndex][3] = vec.W
}

// Transposed flips the Matrix4 along its diagonal, returning the result.
func (matrix Matrix4) Transposed() Matrix4 {

	mat := matrix

	mat[1][0] = matrix[0][1]
	mat[2][0] = matrix[0][2]
	mat[3][0] = matrix[0][3]

	mat[0][1] = matrix[1][0]
	mat[2][1] = matrix[1][2]
	mat[3][1] = matrix[1][3]

	mat[0][2] = matrix[2][0]
	mat[1][2] = matrix[2][1]
	mat[3][2] = matrix[2][3]

	mat[0][3] = matrix[3][0]
	mat[1][3] = matrix[3][1]
	mat[2][3] = matrix[3][2]

	return mat

}

// Inverted returns an inverted (reversed) clone of the Matrix4, using the
// cofactor expansion approach.
func (matrix Matrix4) Inverted() Matrix4 {

	a2323 := matrix[2][2]*matrix[3][3] - matrix[2][3]*matrix[3][2]
	a1323 := matrix[2][1]*matrix[3][3] - matrix[2][3]*matrix[3][1]
	a1223 := matrix[2][1]*matrix[3][2] - matrix[2][2]*matrix[3][1]
	a0323 := matrix[2][0]*matrix[3][3] - matrix[2][3]*matrix[3][0]
	a0223 := matrix[2][0]*matrix[3][2] - matrix[2][2]*matrix[3][0]
	a0123 := matrix[2][0]*matrix[3][1] - matrix[2][1]*matrix[3][0]
	a2313 := matrix[1][2]*matrix[3][3] - matrix[1][3]*matrix[3][2]
	a1313 := matrix[1][1]*matrix[3][3] - matrix[1][3]*matrix[3][1]
	a1213 := matrix[1][1]*matrix[3][2] - matrix[1][2]*matrix[3][1]
	a2312 := matrix[1][2]*matrix[2][3] - matrix[1][3]*matrix[2][2]
	a1312 := matrix[1][1]*matrix[2][3] - matrix[1][3]*matrix[2][1]
	a1212 := matrix[1][1]*matrix[2][2] - matrix[1][2]*matrix[2][1]
	a0313 := matrix[1][0]*matrix[3][3] - matrix[1][3]*matrix[3][0]
	a0213 := matrix[1][0]*matrix[3][2] - matrix[1][2]*matrix[3][0]
	a0312 := matrix[1][0]*matrix[2][3] - matrix[1][3]*matrix[2][0]
	a0212 := matrix[1][0]*matrix[2][2] - matrix[1][2]*matrix[2][0]
	a0113 := matrix[1][0]*matrix[3][1] - matrix[1][1]*matrix[3][0]
	a0112 := matrix[1][0]*matrix[2][1] - matrix[1][1]*matrix[2][0]

	det := matrix[0][0]*(matrix[1][1]*a2323-matrix[1][2]*a1323+matrix[1][3]*a1223) -
		matrix[0][1]*(matrix[1][0]*a2323-matrix[1][2]*a0323+matrix[1][3]*a0223) +
		matrix[0][2]*(matrix[1][0]*a1323-matrix[1][1]*a0323+matrix[1][3]*a0123) -
		matrix[0][3]*(matrix[1][0]*a1223-matrix[1][1]*a0223+matrix[1][2]*a0123)

	det = 1 / det

	m := NewMatrix4()

	m[0][0] = det * (matrix[1][1]*a2323 - matrix[1][2]*a1323 + matrix[1][3]*a1223)
	m[0][1] = det * -(matrix[0][1]*a2323 - matrix[0][2]*a1323 + matrix[0][3]*a1223)
	m[0][2] = det * (matrix[0][1]*a2313 - matrix[0][2]*a1313 + matrix[0][3]*a1213)
	m[0][3] = det * -(matrix[0][1]*a2312 - matrix[0][2]*a1312 + matrix[0][3]*a1212)
	m[1][0] = det * -(matrix[1][0]*a2323 - matrix[1][2]*a0323 + matrix[1][3]*a0223)
	m[1][1] = det * (matrix[0][0]*a2323 - matrix[0][2]*a0323 + matrix[0][3]*a0223)
	m[1][2] = det * -(matrix[0][0]*a2313 - matrix[0][2]*a0313 + matrix[0][3]*a0213)
	m[1][3] = det * (matrix[0][0]*a2312 - matrix[0][2]*a0312 + matrix[0][3]*a0212)
	m[2][0] = det * (matrix[1][0]*a1323 - matrix[1][1]*a0323 + matrix[1][3]*a0123)
	m[2][1] = det * -(matrix[0][0]*a1323 - matrix[0][1]*a0323 + matrix[0][3]*a0123)
	m[2][2] = det * (matrix[0][0]*a1313 - matrix[0][1]*a0313 + matrix[0][3]*a0113)
	m[2][3] = det * -(matrix[0][0]*a1312 - matrix[0][1]*a0312 + matrix[0][3]*a0112)
	m[3][0] = det * -(matrix[1][0]*a1223 - matrix[1][1]*a0223 + matrix[1][2]*a0123)
	m[3][1] = det * (matrix[0][0]*a1223 - matrix[0][1]*a0223 + matrix[0][2]*a0123)
	m[3][2] = det * -(matrix[0][0]*a1213 - matrix[0][1]*a0213 + matrix[0][2]*a0113)
	m[3][3] = det * (matrix[0][0]*a1212 - matrix[0][1]*a0212 + matrix[0][2]*a0112)

	return m

}

// MultVec multiplies the Vector3 provided by the Matrix4, giving a Vector3
// that has been rotated, scaled, and translated as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {
	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}
}

// MultVecW multiplies the Vector4 provided by the Matrix4, including the
// fourth (W) component.
func (matrix Matrix4) MultVecW(vect Vector4) Vector4 {
	return Vector4{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0]*vect.W,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1]*vect.W,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2]*vect.W,
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3]*vect.W,
	}
}

// Mult multiplies a Matrix4 by the other Matrix4 provided, effectively
// combining their transformations.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := NewMatrix4()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			newMat[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return newMat

}

// Equals returns true if the Matrix4 and the other Matrix4 are close enough
// in all values.
func (matrix Matrix4) Equals(other Matrix4) bool {
	const eps = 1e-5
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math32.Abs(matrix[r][c]-other[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the Matrix4 is an unmodified identity Matrix4.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is
// the vertical field of view in degrees, near and far are the clipping
// planes, and viewWidth / viewHeight are the dimensions of the backing
// texture. Generally, you won't need to use this directly.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float32) Matrix4 {

	aspect := viewWidth / viewHeight

	t := math32.Tan(fovy * math32.Pi / 360)
	b := -t
	r := t * aspect
	l := -r

	return Matrix4{
		{(2 * near) / (r - l), 0, (r + l) / (r - l), 0},
		{0, (2 * near) / (t - b), (t + b) / (t - b), 0},
		{0, 0, -((far + near) / (far - near)), -((2 * far * near) / (far - near))},
		{0, 0, -1, 0},
	}

}

// NewLookAtMatrix generates a new rotation Matrix4 to point an object at the
// from position towards the to position. up is the upward vector (usually
// WorldUp).
func NewLookAtMatrix(from, to, up Vector3) Matrix4 {

	// If from and to coincide, an identity Matrix4 is a sensible default.
	if from.Equals(to) {
		return NewMatrix4()
	}

	z := to.Sub(from).Unit()
	up = up.Unit()

	// If z is parallel to up the matrix would be degenerate, so sub up out
	// for another axis.
	if z.Equals(up) || z.Equals(up.Invert()) {
		if !up.Equals(WorldRight) {
			up = WorldRight
		} else {
			up = WorldBackward
		}
	}

	x := up.Cross(z).Unit()
	y := z.Cross(x)

	return Matrix4{
		{x.X, x.Y, x.Z, 0},
		{y.X, y.Y, y.Z, 0},
		{z.X, z.Y, z.Z, 0},
		{0, 0, 0, 1},
	}

}
