package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// WrapAngle wraps a degree angle into (-180, 180]. One modulo, one
// branch, never iterates.
func WrapAngle(angle float32) float32 {
	angle = math32.Mod(angle, 360)
	if angle <= -180 {
		return angle + 360
	}
	if angle > 180 {
		return angle - 360
	}
	return angle
}

// WrapPitch wraps like WrapAngle, then clamps to [-90, 90] for pitch
// angles that must not invert.
func WrapPitch(angle float32) float32 {
	angle = WrapAngle(angle)
	if angle < -90 {
		return -90
	}
	if angle > 90 {
		return 90
	}
	return angle
}

// WrapRadian wraps a radian angle into (-Pi, Pi].
func WrapRadian(radian float64) float64 {
	radian = math.Mod(radian, TwoPi)
	if radian <= -Pi {
		return radian + TwoPi
	}
	if radian > Pi {
		return radian - TwoPi
	}
	return radian
}

// WrapByte wraps an integer into [0, 255].
func WrapByte(value int) byte {
	value %= 256
	if value < 0 {
		value += 256
	}
	return byte(value)
}

// AngleDiff returns the positive difference between two degree angles,
// always in [0, 180].
func AngleDiff(angle1, angle2 float32) float32 {
	return math32.Abs(WrapAngle(angle1 - angle2))
}

// RadianDiff returns the positive difference between two radian angles,
// always in [0, Pi].
func RadianDiff(radian1, radian2 float64) float64 {
	return math.Abs(WrapRadian(radian1 - radian2))
}
