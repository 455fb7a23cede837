package fmath

import "github.com/chewxy/math32"

// Vec3 is an immutable three-component float32 vector. Every operation
// returns a new value; none mutate their inputs.
type Vec3 struct {
	X, Y, Z float32
}

// Axis conventions shared by the quaternion and matrix builders.
var (
	V3Zero  = Vec3{0, 0, 0}
	V3One   = Vec3{1, 1, 1}
	Right   = Vec3{1, 0, 0}
	Up      = Vec3{0, 1, 0}
	Forward = Vec3{0, 0, 1}
)

func V3Add(a, b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func V3Sub(a, b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// V3Mul multiplies componentwise.
func V3Mul(a, b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// V3Div divides componentwise. Zero divisors follow IEEE rules and
// propagate Inf or NaN, they are not checked.
func V3Div(a, b Vec3) Vec3 { return Vec3{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// V3Scale multiplies every component by s.
func V3Scale(v Vec3, s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func V3Dot(a, b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// V3Cross returns the right-handed cross product, the vector orthogonal
// to both a and b.
func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3LengthSquared(a Vec3) float32 { return V3Dot(a, a) }

// V3Length returns the exact Euclidean length.
func V3Length(a Vec3) float32 { return math32.Sqrt(V3LengthSquared(a)) }

// V3FastLength trades exactness for the approximate Sqrt, with relative
// error around 1e-3.
func V3FastLength(a Vec3) float32 {
	return float32(Sqrt(float64(V3LengthSquared(a))))
}

// V3Normalize scales a to length 1. A zero-length input divides by zero
// and propagates NaN; degenerate geometry surfaces downstream instead of
// being masked here.
func V3Normalize(a Vec3) Vec3 { return V3Scale(a, 1/V3Length(a)) }

// V3Ceil rounds each component up to the nearest integer value.
func V3Ceil(o Vec3) Vec3 {
	return Vec3{math32.Ceil(o.X), math32.Ceil(o.Y), math32.Ceil(o.Z)}
}

// V3Floor rounds each component down to the nearest integer value.
func V3Floor(o Vec3) Vec3 {
	return Vec3{math32.Floor(o.X), math32.Floor(o.Y), math32.Floor(o.Z)}
}

// V3Round rounds each component to the nearest integer value, halves up.
func V3Round(o Vec3) Vec3 {
	return Vec3{math32.Floor(o.X + 0.5), math32.Floor(o.Y + 0.5), math32.Floor(o.Z + 0.5)}
}

// V3Abs replaces each component with its absolute value.
func V3Abs(o Vec3) Vec3 {
	return Vec3{math32.Abs(o.X), math32.Abs(o.Y), math32.Abs(o.Z)}
}

// V3Min returns the smallest X, Y and Z across both vectors.
func V3Min(o1, o2 Vec3) Vec3 {
	return Vec3{math32.Min(o1.X, o2.X), math32.Min(o1.Y, o2.Y), math32.Min(o1.Z, o2.Z)}
}

// V3Max returns the largest X, Y and Z across both vectors.
func V3Max(o1, o2 Vec3) Vec3 {
	return Vec3{math32.Max(o1.X, o2.X), math32.Max(o1.Y, o2.Y), math32.Max(o1.Z, o2.Z)}
}

// V3Pow raises each component to the given power.
func V3Pow(o Vec3, power float32) Vec3 {
	return Vec3{math32.Pow(o.X, power), math32.Pow(o.Y, power), math32.Pow(o.Z, power)}
}

func V3Distance(a, b Vec3) float32 { return V3Length(V3Sub(a, b)) }

func V3DistanceSquared(a, b Vec3) float32 { return V3LengthSquared(V3Sub(a, b)) }

// V3Rand draws each component uniformly from [-1, 1). The result is not
// normalized; callers wanting a unit direction normalize it themselves.
func V3Rand(rng *Rand) Vec3 {
	return Vec3{
		float32(rng.Float64()*2 - 1),
		float32(rng.Float64()*2 - 1),
		float32(rng.Float64()*2 - 1),
	}
}

// V3Compare orders vectors by truncated squared length.
func V3Compare(a, b Vec3) int {
	return int(V3LengthSquared(a)) - int(V3LengthSquared(b))
}

// V3XZ projects onto the horizontal plane: x keeps its place, z becomes
// the second coordinate.
func V3XZ(o Vec3) Vec2 { return Vec2{o.X, o.Z} }

// V3Array returns the components as a fixed array.
func V3Array(a Vec3) [3]float32 { return [3]float32{a.X, a.Y, a.Z} }
