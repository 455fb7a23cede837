package fmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dynamic casts for loosely typed values (decoded config trees, script
// bindings). Numeric inputs convert directly, truncating floats and
// wrapping on overflow; everything else is stringified and parsed. The
// second result reports success.

// CastFloat64 converts o to float64.
func CastFloat64(o any) (float64, bool) {
	if f, ok := floatValue(o); ok {
		return f, true
	}
	if s, ok := stringValue(o); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// CastFloat32 converts o to float32.
func CastFloat32(o any) (float32, bool) {
	if f, ok := floatValue(o); ok {
		return float32(f), true
	}
	if s, ok := stringValue(o); ok {
		if f, err := strconv.ParseFloat(s, 32); err == nil {
			return float32(f), true
		}
	}
	return 0, false
}

// CastInt64 converts o to int64.
func CastInt64(o any) (int64, bool) {
	if i, ok := intValue(o); ok {
		return i, true
	}
	if s, ok := stringValue(o); ok {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// CastInt32 converts o to int32, wrapping out-of-range numeric input.
func CastInt32(o any) (int32, bool) {
	if i, ok := intValue(o); ok {
		return int32(i), true
	}
	if s, ok := stringValue(o); ok {
		if i, err := strconv.ParseInt(s, 10, 32); err == nil {
			return int32(i), true
		}
	}
	return 0, false
}

// CastInt16 converts o to int16, wrapping out-of-range numeric input.
func CastInt16(o any) (int16, bool) {
	if i, ok := intValue(o); ok {
		return int16(i), true
	}
	if s, ok := stringValue(o); ok {
		if i, err := strconv.ParseInt(s, 10, 16); err == nil {
			return int16(i), true
		}
	}
	return 0, false
}

// CastInt8 converts o to int8, wrapping out-of-range numeric input.
func CastInt8(o any) (int8, bool) {
	if i, ok := intValue(o); ok {
		return int8(i), true
	}
	if s, ok := stringValue(o); ok {
		if i, err := strconv.ParseInt(s, 10, 8); err == nil {
			return int8(i), true
		}
	}
	return 0, false
}

// CastBool converts o to bool. Strings compare case-insensitively
// against "true"; any other string is false, not a failure.
func CastBool(o any) (bool, bool) {
	switch v := o.(type) {
	case bool:
		return v, true
	case string:
		return strings.EqualFold(v, "true"), true
	}
	return false, false
}

func floatValue(o any) (float64, bool) {
	switch v := o.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func intValue(o any) (int64, bool) {
	switch v := o.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return truncInt64(float64(v)), true
	case float64:
		return truncInt64(v), true
	}
	return 0, false
}

// truncInt64 truncates toward zero with the saturating edge behavior of
// a checked narrowing: NaN is 0, out-of-range input pins to the bounds.
func truncInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func stringValue(o any) (string, bool) {
	if o == nil {
		return "", false
	}
	if s, ok := o.(string); ok {
		return s, true
	}
	return fmt.Sprint(o), true
}
