package fmath

import "math"

// Approximation coefficients. sin uses a parabola through the zero
// crossings plus one correction term; asin is a quintic with a square
// root correction; atan is a single-coefficient rational form.
const (
	sinA = -4 / SquaredPi
	sinB = 4 / Pi
	sinP = 9.0 / 40

	asinA = -0.0481295276831013447
	asinB = -0.343835993947915197
	asinC = 0.962761848425913169
	asinD = 1.00138940860107040

	atanA = 0.280872
)

// Sin approximates sin(x). For -Pi <= x <= Pi the maximum absolute error
// is 0.0015. No wrapping is performed; callers needing periodicity wrap
// the input first (see WrapRadian).
func Sin(x float64) float64 {
	x = sinA*x*math.Abs(x) + sinB*x
	return sinP*(x*math.Abs(x)-x) + x
}

// Cos approximates cos(x) by phase-shifting Sin a quarter period.
// Same error bound as Sin for -Pi <= x <= Pi.
func Cos(x float64) float64 {
	if x > HalfPi {
		return Sin(x - ThreePiHalves)
	}
	return Sin(x + HalfPi)
}

// Tan is Sin/Cos. It inherits both error bounds and is undefined where
// cos(x) is near zero.
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}

// Asin approximates arcsine over -1 <= x <= 1.
func Asin(x float64) float64 {
	a := math.Abs(x)
	return x*(a*(a*asinA+asinB)+asinC) + signum(x)*(asinD-math.Sqrt(1-x*x))
}

// Acos approximates arccosine over -1 <= x <= 1 via the Asin identity.
func Acos(x float64) float64 {
	return HalfPi - Asin(x)
}

// Atan approximates arctangent, branching on |x| to exploit the
// reciprocal identity.
func Atan(x float64) float64 {
	if math.Abs(x) < 1 {
		return x / (1 + atanA*x*x)
	}
	return signum(x)*HalfPi - x/(x*x+atanA)
}

// InvSqrt computes 1/sqrt(x) from a magic-constant bit seed refined by a
// single Newton-Raphson step. Defined only for x > 0; zero and negative
// inputs are not checked and produce meaningless values.
func InvSqrt(x float64) float64 {
	xhalf := 0.5 * x
	y := math.Float64frombits(0x5FE6EB50C7B537AA - (math.Float64bits(x) >> 1))
	return y * (1.5 - xhalf*y*y)
}

// Sqrt approximates the square root as x*InvSqrt(x), with relative error
// around 1e-3 after the single Newton step.
func Sqrt(x float64) float64 {
	return x * InvSqrt(x)
}

// signum returns -1, 0 or 1. Zero and NaN pass through unchanged.
func signum(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return x
}
