// Package color provides an 8-bit RGBA color type with the blending
// rules the fmath interpolators imply: channel math truncates instead
// of rounding, and alpha participates as a plain fourth channel.
package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fmath"
)

// Color stores explicit 8-bit channels, decoupled from any renderer.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Lerp interpolates every channel toward target, truncating each to an
// integer. t must lie in [0, 1].
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: uint8(fmath.LerpInt(int(c.R), int(target.R), t)),
		G: uint8(fmath.LerpInt(int(c.G), int(target.G), t)),
		B: uint8(fmath.LerpInt(int(c.B), int(target.B), t)),
		A: uint8(fmath.LerpInt(int(c.A), int(target.A), t)),
	}
}

// Blend mixes toward dst steered by the receiver's alpha: a fully
// transparent receiver keeps its own channels, a fully opaque one lands
// on dst. All four channels interpolate, alpha included.
func (c Color) Blend(dst Color) Color {
	return c.Lerp(dst, float64(c.A)/255.0)
}

// Scale multiplies the color channels by factor (for fading effects).
// Alpha stays untouched; factors at or below zero land on black.
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Color{0, 0, 0, c.A}
	}
	if factor >= 1 {
		return c
	}
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Add performs additive blend with clamping (light accumulation).
// Alpha keeps the receiver's value.
func (c Color) Add(src Color) Color {
	return Color{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
		A: c.A,
	}
}

// Max returns the per-channel maximum (non-destructive highlight).
func (c Color) Max(src Color) Color {
	return Color{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
		A: max(c.A, src.A),
	}
}

// Hex formats the color as #rrggbb. Alpha is not encoded.
func (c Color) Hex() string {
	return "#" + fmath.DecToHex(int(c.R), 2) + fmath.DecToHex(int(c.G), 2) + fmath.DecToHex(int(c.B), 2)
}

// Colorful bridges to go-colorful for color-space aware operations.
// Alpha does not survive the trip.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// BlendLuv interpolates in CIE-Luv, which keeps perceived lightness
// even where plain channel lerps drift muddy. Alpha interpolates
// linearly alongside.
func (c Color) BlendLuv(other Color, t float64) Color {
	blended := FromColorful(c.Colorful().BlendLuv(other.Colorful(), t).Clamped())
	blended.A = uint8(fmath.LerpInt(int(c.A), int(other.A), t))
	return blended
}

// FromColorful converts back from go-colorful, opaque.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// Random returns an opaque color with each channel drawn from [0, 255).
func Random(rng *fmath.Rand) Color {
	return Color{
		R: uint8(rng.Intn(255)),
		G: uint8(rng.Intn(255)),
		B: uint8(rng.Intn(255)),
		A: 255,
	}
}

// RandomHue returns a fully saturated color with a uniform random hue,
// useful for telling spawned entities apart.
func RandomHue(rng *fmath.Rand) Color {
	return FromColorful(colorful.Hsv(rng.Float64()*360.0, 1, 1))
}
