package fmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Matrix is a square, row-major matrix of float32 entries. The struct
// is a small header over shared backing storage: copying it aliases the
// same entries, NewMatrix allocates fresh ones.
type Matrix struct {
	dimension int
	data      []float32
}

// Index maps (x, y) to the flat row-major offset for a given dimension.
func Index(x, y, dim int) int { return x*dim + y }

// NewMatrix returns the dim by dim identity.
func NewMatrix(dim int) Matrix {
	m := Matrix{
		dimension: dim,
		data:      make([]float32, dim*dim),
	}
	for i := 0; i < dim; i++ {
		m.data[Index(i, i, dim)] = 1
	}
	return m
}

// Identity returns the 4x4 identity.
func Identity() Matrix { return NewMatrix(4) }

func (m Matrix) Dimension() int { return m.dimension }

func (m Matrix) Get(x, y int) float32 { return m.data[Index(x, y, m.dimension)] }

// Set stores value at (x, y). Writes land in the shared backing slice,
// so every copy of the header sees them.
func (m Matrix) Set(x, y int, value float32) { m.data[Index(x, y, m.dimension)] = value }

// --- Arithmetic ---

// MAdd returns the entrywise sum of a and b.
func MAdd(a, b Matrix) (Matrix, error) {
	if a.dimension != b.dimension {
		return Matrix{}, fmt.Errorf("matrix add: dimension mismatch %d vs %d", a.dimension, b.dimension)
	}
	res := NewMatrix(a.dimension)
	for i := range a.data {
		res.data[i] = a.data[i] + b.data[i]
	}
	return res, nil
}

// MMul returns the product a*b.
func MMul(a, b Matrix) (Matrix, error) {
	if a.dimension != b.dimension {
		return Matrix{}, fmt.Errorf("matrix multiply: dimension mismatch %d vs %d", a.dimension, b.dimension)
	}
	return mulSquare(a, b), nil
}

// mulSquare multiplies two matrices already known to share a dimension.
func mulSquare(a, b Matrix) Matrix {
	res := NewMatrix(a.dimension)
	for i := 0; i < a.dimension; i++ {
		for j := 0; j < a.dimension; j++ {
			var sum float32
			for k := 0; k < a.dimension; k++ {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			res.Set(i, j, sum)
		}
	}
	return res
}

// --- Builders ---

// Translate returns the 4x4 identity with v written across row 3.
func Translate(v Vec3) Matrix {
	m := Identity()
	m.Set(3, 0, v.X)
	m.Set(3, 1, v.Y)
	m.Set(3, 2, v.Z)
	return m
}

// Scale returns the 4x4 matrix scaling all three axes by s.
func Scale(s float32) Matrix { return ScaleVec(Vec3{s, s, s}) }

// ScaleVec returns the 4x4 matrix scaling each axis by the matching
// component of v.
func ScaleVec(v Vec3) Matrix {
	m := Identity()
	m.Set(0, 0, v.X)
	m.Set(1, 1, v.Y)
	m.Set(2, 2, v.Z)
	return m
}

// RotateX returns the 4x4 rotation of rot degrees about the X axis.
func RotateX(rot float32) Matrix {
	m := Identity()
	c := math32.Cos(rot * DegToRad32)
	s := math32.Sin(rot * DegToRad32)
	m.Set(1, 1, c)
	m.Set(1, 2, -s)
	m.Set(2, 1, s)
	m.Set(2, 2, c)
	return m
}

// RotateY returns the 4x4 rotation of rot degrees about the Y axis.
func RotateY(rot float32) Matrix {
	m := Identity()
	c := math32.Cos(rot * DegToRad32)
	s := math32.Sin(rot * DegToRad32)
	m.Set(0, 0, c)
	m.Set(0, 2, s)
	m.Set(2, 0, -s)
	m.Set(2, 2, c)
	return m
}

// RotateZ returns the 4x4 rotation of rot degrees about the Z axis.
func RotateZ(rot float32) Matrix {
	m := Identity()
	c := math32.Cos(rot * DegToRad32)
	s := math32.Sin(rot * DegToRad32)
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// RotateQuat returns the 4x4 rotation described by rot. The quaternion
// is normalized first, so rot does not need unit length.
func RotateQuat(rot Quaternion) Matrix {
	r := QNormalize(rot)
	m := Identity()
	m.Set(0, 0, 1-2*(r.Y*r.Y+r.Z*r.Z))
	m.Set(0, 1, 2*(r.X*r.Y-r.W*r.Z))
	m.Set(0, 2, 2*(r.X*r.Z+r.W*r.Y))
	m.Set(1, 0, 2*(r.X*r.Y+r.W*r.Z))
	m.Set(1, 1, 1-2*(r.X*r.X+r.Z*r.Z))
	m.Set(1, 2, 2*(r.Y*r.Z-r.W*r.X))
	m.Set(2, 0, 2*(r.X*r.Z-r.W*r.Y))
	m.Set(2, 1, 2*(r.Y*r.Z+r.W*r.X))
	m.Set(2, 2, 1-2*(r.X*r.X+r.Y*r.Y))
	// row 3 and column 3 stay identity
	return m
}

// --- Transforms ---

// V3Transform applies m to the homogeneous point (v, 1) and returns the
// first three components. m must be 4x4. Row 3 of m never reaches the
// result; translation offsets must sit in column 3 to move v.
func V3Transform(v Vec3, m Matrix) Vec3 {
	vec := [4]float32{v.X, v.Y, v.Z, 1}
	var res [4]float32
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			res[i] += m.Get(i, k) * vec[k]
		}
	}
	return Vec3{res[0], res[1], res[2]}
}

// V3TransformQuat rotates v by rot.
func V3TransformQuat(v Vec3, rot Quaternion) Vec3 {
	return V3Transform(v, RotateQuat(rot))
}

// --- Projections ---

// LookAt returns the 4x4 view matrix for a camera at eye looking toward
// at, with up steering the vertical. The orthonormal basis lands in
// columns 0 through 2 and the rotated eye offset in row 3.
func LookAt(eye, at, up Vec3) Matrix {
	f := V3Normalize(V3Sub(at, eye))
	up = V3Normalize(up)
	s := V3Normalize(V3Cross(f, up))
	u := V3Normalize(V3Cross(s, f))

	m := Identity()
	m.Set(0, 0, s.X)
	m.Set(1, 0, s.Y)
	m.Set(2, 0, s.Z)
	m.Set(0, 1, u.X)
	m.Set(1, 1, u.Y)
	m.Set(2, 1, u.Z)
	m.Set(0, 2, -f.X)
	m.Set(1, 2, -f.Y)
	m.Set(2, 2, -f.Z)

	return mulSquare(Translate(V3Scale(eye, -1)), m)
}

// Perspective returns the 4x4 projection for a vertical field of view
// in degrees, a width over height aspect ratio and near and far clip
// planes.
func Perspective(fov, aspect, znear, zfar float32) Matrix {
	ymax := znear * math32.Tan(fov*Pi32/360)
	xmax := ymax * aspect
	return Orthographic(xmax, -xmax, ymax, -ymax, znear, zfar)
}

// Orthographic returns the projection matrix for the given clip
// extents. Perspective wraps it with symmetric extents derived from a
// field of view.
func Orthographic(right, left, top, bottom, near, far float32) Matrix {
	m := Identity()
	width := right - left
	height := top - bottom
	depth := far - near
	m.Set(0, 0, 2*near/width)
	m.Set(1, 1, 2*near/height)
	m.Set(0, 2, (right+left)/width)
	m.Set(1, 2, (top+bottom)/height)
	m.Set(2, 2, (-far-near)/depth)
	m.Set(2, 3, -1)
	m.Set(3, 2, -2*near*far/depth)
	m.Set(3, 3, 0)
	return m
}

// --- Reshaping ---

// MTranspose returns m with rows and columns swapped.
func MTranspose(m Matrix) Matrix {
	res := NewMatrix(m.dimension)
	for i := 0; i < m.dimension; i++ {
		for j := 0; j < m.dimension; j++ {
			res.Set(j, i, m.Get(i, j))
		}
	}
	return res
}

// MRound rounds every entry to the nearest integer, halves up.
func MRound(m Matrix) Matrix {
	res := NewMatrix(m.dimension)
	for i := range m.data {
		res.data[i] = math32.Floor(m.data[i] + 0.5)
	}
	return res
}

// MToArray returns a copy of the entries in row-major order.
func MToArray(m Matrix) []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out
}
