// Package fmath provides fast, bounded-error float math for real-time 3D work.
//
// Features:
//   - Approximate sin/cos/tan/asin/acos/atan with documented error bounds
//   - Fast inverse square root (magic-constant seed, one Newton step)
//   - Float32 vector, Hamilton quaternion and square matrix algebra
//   - Linear, bilinear and trilinear interpolation
//   - Angle wrapping, clamping and small integer utilities
//
// Everything is a pure function over immutable values: no shared state, no
// locks, safe to call from any goroutine. Domain edge cases (zero-length
// normalize, inverse sqrt of non-positive input) propagate IEEE NaN/Inf
// instead of erroring; only structural misuse (matrix dimension mismatch,
// power-of-two rounding past the representable range) returns an error.
//
// The companion fixed-point package vmath in vi-fighter trades range for
// determinism; this package trades exactness for speed while staying in
// float territory.
package fmath
