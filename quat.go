package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Quaternion is a Hamilton quaternion with scalar part W and vector part
// X, Y, Z. Rotation operations assume unit length: QFromAxisAngle
// guarantees it, direct literals are trusted as already normalized.
type Quaternion struct {
	X, Y, Z, W float32
}

// QIdentity is the no-rotation quaternion.
var QIdentity = Quaternion{0, 0, 0, 1}

func QLengthSquared(a Quaternion) float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W
}

// QLength returns the exact magnitude.
func QLength(a Quaternion) float32 {
	return math32.Sqrt(QLengthSquared(a))
}

// QNormalize scales a to unit length. Zero quaternions divide by zero
// and propagate NaN.
func QNormalize(a Quaternion) Quaternion {
	l := QLength(a)
	return Quaternion{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// QMul returns the Hamilton product a*b. Non-commutative; order is part
// of the contract.
func QMul(a, b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y + a.Y*b.W + a.Z*b.X - a.X*b.Z,
		Z: a.W*b.Z + a.Z*b.W + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QFromAxisAngle builds the rotation of angle degrees about axis. The
// result is normalized, so the axis does not need unit length.
func QFromAxisAngle(angle float32, axis Vec3) Quaternion {
	half := float64(angle) * DegToRad / 2
	s := float32(math.Sin(half))
	return QNormalize(Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(half)),
	})
}

// QRotate applies a fresh axis-angle rotation before the existing one:
// the new quaternion left-multiplies a. Swapping the operands changes
// the composition order and the result.
func QRotate(a Quaternion, angle float32, axis Vec3) Quaternion {
	return QMul(QFromAxisAngle(angle, axis), a)
}

// QEuler composes a rotation from pitch, yaw and roll degrees about
// Right, Up and Forward, yaw outermost.
func QEuler(pitch, yaw, roll float32) Quaternion {
	qpitch := QFromAxisAngle(pitch, Right)
	qyaw := QFromAxisAngle(yaw, Up)
	qroll := QFromAxisAngle(roll, Forward)
	return QMul(QMul(qyaw, qpitch), qroll)
}

// QRotationTo returns the rotation carrying vector a onto vector b.
// Equal inputs short-circuit to the identity, keeping acos clear of its
// domain edge.
func QRotationTo(a, b Vec3) Quaternion {
	if a == b {
		return QIdentity
	}
	a = V3Normalize(a)
	b = V3Normalize(b)
	angle := float32(math.Acos(float64(V3Dot(a, b))) * RadToDeg)
	return QFromAxisAngle(angle, V3Cross(a, b))
}

// QAxisAngles extracts the rotation about each axis in degrees:
// X carries pitch, Y yaw, Z roll. The component relabel below matches
// that axis assignment; downstream callers depend on it. Yaw comes back
// wrapped into (-180, 180]. At the gimbal poles (|pitch| near 90) roll
// collapses to zero and yaw absorbs the remaining twist.
func QAxisAngles(a Quaternion) Vec3 {
	q0 := float64(a.W)
	q1 := float64(a.Z) // roll
	q2 := float64(a.X) // pitch
	q3 := float64(a.Y) // yaw

	var r1, r2, r3 float64
	test := q0*q2 - q3*q1

	if math.Abs(test) < 0.4999 {
		r1 = math.Atan2(2*(q0*q1+q2*q3), 1-2*(q1*q1+q2*q2))
		r2 = math.Asin(2 * test)
		r3 = math.Atan2(2*(q0*q3+q1*q2), 1-2*(q2*q2+q3*q3))
	} else { // pitch at the north or south pole
		sign := 1.0
		if test < 0 {
			sign = -1.0
		}
		r1 = 0
		r2 = sign * math.Pi / 2
		r3 = -sign * 2 * math.Atan2(q1, q0)
	}

	roll := float32(r1 * RadToDeg)
	pitch := float32(r2 * RadToDeg)
	yaw := float32(r3 * RadToDeg)
	if yaw > 180 {
		yaw -= 360
	} else if yaw < -180 {
		yaw += 360
	}
	return Vec3{pitch, yaw, roll}
}

// DirectionVector returns unit X transformed by the given pitch and yaw
// degrees, pitch about Forward composed with yaw about Up.
func DirectionVector(pitch, yaw float32) Vec3 {
	q := QMul(QFromAxisAngle(pitch, Forward), QFromAxisAngle(yaw, Up))
	return V3TransformQuat(Right, q)
}

// QDirection returns the forward vector transformed by rot.
func QDirection(rot Quaternion) Vec3 {
	return V3TransformQuat(Forward, rot)
}
