package fmath

import "math"

// Angle and conversion constants
const (
	Pi            = math.Pi
	SquaredPi     = Pi * Pi
	HalfPi        = 0.5 * Pi
	QuarterPi     = 0.5 * HalfPi
	TwoPi         = 2.0 * Pi
	ThreePiHalves = TwoPi - HalfPi
	DegToRad      = Pi / 180.0
	RadToDeg      = 180.0 / Pi
)

// Float32 variants for the float32 algebra paths
const (
	Pi32       float32 = math.Pi
	DegToRad32 float32 = math.Pi / 180.0
	RadToDeg32 float32 = 180.0 / math.Pi
)

// Derived constants. The epsilons are contractual bit patterns, reproduced
// by reinterpretation rather than decimal literals so they stay bit-exact.
var (
	SqrtOfTwo     = math.Sqrt(2.0)
	HalfSqrtOfTwo = 0.5 * SqrtOfTwo

	// Smallest values meaningfully distinguishable from zero in comparisons
	DblEpsilon = math.Float64frombits(0x3cb0000000000000)
	FltEpsilon = math.Float32frombits(0x34000000)
)
