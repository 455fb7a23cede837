package fmath

import "github.com/chewxy/math32"

// Vec2 is an immutable two-component float32 vector, used by the
// interpolation helpers and planar projections.
type Vec2 struct {
	X, Y float32
}

func V2Add(a, b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func V2Sub(a, b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// V2Scale multiplies both components by s.
func V2Scale(v Vec2, s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func V2Dot(a, b Vec2) float32 { return a.X*b.X + a.Y*b.Y }

func V2LengthSquared(a Vec2) float32 { return V2Dot(a, a) }

// V2Length returns the exact Euclidean length.
func V2Length(a Vec2) float32 { return math32.Sqrt(V2LengthSquared(a)) }
