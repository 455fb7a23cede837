package fmath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits value to the inclusive [low, high] range.
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// Mean averages the given values. Integer types keep integer division.
// Panics on an empty argument list.
func Mean[T number](values ...T) T {
	var sum T
	for _, v := range values {
		sum += v
	}
	return sum / T(len(values))
}

// Mod returns the positive remainder of x/div for integer types.
func Mod[T constraints.Integer](x, div T) T {
	if x < 0 {
		return x%div + div
	}
	return x % div
}

// FMod returns the positive remainder of x/div.
func FMod(x, div float64) float64 {
	if x < 0 {
		return math.Mod(x, div) + div
	}
	return math.Mod(x, div)
}

// FMod32 is FMod for float32.
func FMod32(x, div float32) float32 {
	if x < 0 {
		return math32.Mod(x, div) + div
	}
	return math32.Mod(x, div)
}

// Round rounds input to the given number of decimals, halves up.
func Round(input float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(input*p+0.5) / p
}

// Floor rounds x down to the closest integer. Faster than math.Floor
// plus a conversion for the value ranges 3D work uses.
func Floor(x float64) int {
	y := int(x)
	if x < float64(y) {
		return y - 1
	}
	return y
}

// Floor32 is Floor for float32.
func Floor32(x float32) int {
	y := int(x)
	if x < float32(y) {
		return y - 1
	}
	return y
}

// LengthSquared returns the squared Euclidean length of the values.
func LengthSquared(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v * v
	}
	return sum
}

// Length returns the Euclidean length of the values.
func Length(values ...float64) float64 {
	return math.Sqrt(LengthSquared(values...))
}

// RoundUpPow2 rounds x up to the lowest power of two greater or equal to
// it. Values at or below zero round to 1. Values above 2^30 have no
// representable result and return an error.
func RoundUpPow2(x int32) (int32, error) {
	if x <= 0 {
		return 1, nil
	}
	if x > 0x40000000 {
		return 0, fmt.Errorf("round up pow2: %d exceeds the int32 range", x)
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1, nil
}

// RoundUpPow2Int64 is RoundUpPow2 over int64, erroring above 2^62.
func RoundUpPow2Int64(x int64) (int64, error) {
	if x <= 0 {
		return 1, nil
	}
	if x > 0x4000000000000000 {
		return 0, fmt.Errorf("round up pow2: %d exceeds the int64 range", x)
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x + 1, nil
}

// DecToHex formats dec as unsigned hexadecimal (two's complement for
// negatives), left padded with zeros to minDigits.
func DecToHex(dec int, minDigits int) string {
	s := strconv.FormatUint(uint64(uint32(dec)), 16)
	for len(s) < minDigits {
		s = "0" + s
	}
	return s
}
