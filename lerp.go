package fmath

import "golang.org/x/exp/constraints"

// Lerp linearly interpolates between a and b by fraction t:
// (1-t)*a + t*b. Exact at t == 0 and t == 1.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// LerpInt interpolates between integers, truncating toward zero.
func LerpInt(a, b int, t float64) int {
	return int((1-t)*float64(a) + t*float64(b))
}

// LerpAt interpolates the value at x given q0 at x1 and q1 at x2.
// Undefined when x1 == x2: the zero denominator propagates IEEE Inf/NaN.
func LerpAt(x, x1, x2, q0, q1 float64) float64 {
	return ((x2-x)/(x2-x1))*q0 + ((x-x1)/(x2-x1))*q1
}

// BiLerp interpolates the value at (x, y) from the four surrounding
// known values, x axis first then y.
func BiLerp(x, y, q00, q01, q10, q11, x1, x2, y1, y2 float64) float64 {
	q0 := LerpAt(x, x1, x2, q00, q10)
	q1 := LerpAt(x, x1, x2, q01, q11)
	return LerpAt(y, y1, y2, q0, q1)
}

// BiLerpV is BiLerp with the target and the two known corners given as
// vectors: known1 holds the low x/y coordinates, known2 the high ones.
func BiLerpV(target Vec2, q00, q01, q10, q11 float64, known1, known2 Vec2) float64 {
	q0 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q00, q10)
	q1 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q01, q11)
	return LerpAt(float64(target.Y), float64(known1.Y), float64(known2.Y), q0, q1)
}

// TriLerp interpolates the value at (x, y, z) from the eight surrounding
// known values, axis order x, y, z.
func TriLerp(x, y, z, q000, q001, q010, q011, q100, q101, q110, q111,
	x1, x2, y1, y2, z1, z2 float64) float64 {
	q00 := LerpAt(x, x1, x2, q000, q100)
	q01 := LerpAt(x, x1, x2, q010, q110)
	q10 := LerpAt(x, x1, x2, q001, q101)
	q11 := LerpAt(x, x1, x2, q011, q111)
	q0 := LerpAt(y, y1, y2, q00, q10)
	q1 := LerpAt(y, y1, y2, q01, q11)
	return LerpAt(z, z1, z2, q0, q1)
}

// TriLerpV is TriLerp with the target and the two known corners given as
// vectors.
func TriLerpV(target Vec3, q000, q001, q010, q011, q100, q101, q110, q111 float64,
	known1, known2 Vec3) float64 {
	q00 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q000, q100)
	q01 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q010, q110)
	q10 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q001, q101)
	q11 := LerpAt(float64(target.X), float64(known1.X), float64(known2.X), q011, q111)
	q0 := LerpAt(float64(target.Y), float64(known1.Y), float64(known2.Y), q00, q10)
	q1 := LerpAt(float64(target.Y), float64(known1.Y), float64(known2.Y), q01, q11)
	return LerpAt(float64(target.Z), float64(known1.Z), float64(known2.Z), q0, q1)
}

// V2Lerp interpolates each component of two 2D vectors.
func V2Lerp(a, b Vec2, t float32) Vec2 {
	return V2Add(V2Scale(a, 1-t), V2Scale(b, t))
}

// V3Lerp interpolates each component of two vectors.
func V3Lerp(a, b Vec3, t float32) Vec3 {
	return V3Add(V3Scale(a, 1-t), V3Scale(b, t))
}

// QLerp interpolates each quaternion component. Plain componentwise
// interpolation, not slerp; the result is not renormalized.
func QLerp(a, b Quaternion, t float32) Quaternion {
	return Quaternion{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
		W: Lerp(a.W, b.W, t),
	}
}
