package color

import (
	"testing"

	"github.com/lixenwraith/fmath"
)

// TestLerpTruncates pins the integer channel math: the midpoint of 0
// and 255 is 127, not 128.
func TestLerpTruncates(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := Color{127, 127, 127, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Color{10, 20, 30, 40}
	b := Color{200, 210, 220, 230}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Expected t=0 to keep the receiver, got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Expected t=1 to reach the target, got %v", got)
	}
}

// TestBlendAlphaSteering checks the receiver's alpha picks the mix:
// transparent keeps the receiver, opaque lands on the destination.
func TestBlendAlphaSteering(t *testing.T) {
	dst := Color{200, 150, 100, 100}

	transparent := Color{10, 20, 30, 0}
	if got := transparent.Blend(dst); got != transparent {
		t.Errorf("Expected a transparent receiver to keep itself, got %v", got)
	}

	opaque := Color{10, 20, 30, 255}
	if got := opaque.Blend(dst); got != dst {
		t.Errorf("Expected an opaque receiver to land on dst, got %v", got)
	}

	half := Color{100, 0, 0, 128}
	got := half.Blend(Color{200, 0, 0, 128})
	if got.R != 150 {
		t.Errorf("Expected the red midpoint to be 150, got %d", got.R)
	}
}

func TestScale(t *testing.T) {
	c := Color{200, 100, 50, 128}
	if got := c.Scale(0.5); got != (Color{100, 50, 25, 128}) {
		t.Errorf("Expected {100 50 25 128}, got %v", got)
	}
	if got := c.Scale(1.5); got != c {
		t.Errorf("Expected factors above one to keep the color, got %v", got)
	}
	if got := c.Scale(-1); got != (Color{0, 0, 0, 128}) {
		t.Errorf("Expected negative factors to land on black, got %v", got)
	}
}

func TestAddSaturates(t *testing.T) {
	c := Color{200, 10, 128, 255}
	got := c.Add(Color{100, 20, 127, 0})
	if got != (Color{255, 30, 255, 255}) {
		t.Errorf("Expected {255 30 255 255}, got %v", got)
	}
}

func TestMax(t *testing.T) {
	a := Color{10, 200, 30, 100}
	b := Color{20, 100, 30, 255}
	if got := a.Max(b); got != (Color{20, 200, 30, 255}) {
		t.Errorf("Expected {20 200 30 255}, got %v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"Mixed", New(255, 0, 171), "#ff00ab"},
		{"Black", Black, "#000000"},
		{"White", White, "#ffffff"},
		{"Single digit channels", New(1, 2, 3), "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	c := New(51, 102, 153)
	if got := FromColorful(c.Colorful()); got != c {
		t.Errorf("Expected the round trip to restore %v, got %v", c, got)
	}
}

// TestBlendLuv only asserts structure: the midpoint of black and white
// must be a neutral gray strictly between the endpoints.
func TestBlendLuv(t *testing.T) {
	got := Black.BlendLuv(White, 0.5)
	if got.R != got.G || got.G != got.B {
		t.Errorf("Expected a neutral gray, got %v", got)
	}
	if got.R == 0 || got.R == 255 {
		t.Errorf("Expected the gray to sit between the endpoints, got %v", got)
	}
	if got.A != 255 {
		t.Errorf("Expected full alpha, got %d", got.A)
	}
}

func TestRandom(t *testing.T) {
	rng := fmath.NewRandSeeded(5)
	first := Random(rng)
	varied := false
	for i := 0; i < 50; i++ {
		c := Random(rng)
		// channels draw from [0, 255), so 255 never appears
		if c.R == 255 || c.G == 255 || c.B == 255 {
			t.Fatalf("Expected channels below 255, got %v", c)
		}
		if c.A != 255 {
			t.Fatalf("Expected opaque alpha, got %d", c.A)
		}
		if c != first {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected random colors to vary")
	}
}

func TestRandomHue(t *testing.T) {
	rng := fmath.NewRandSeeded(6)
	for i := 0; i < 50; i++ {
		c := RandomHue(rng)
		channels := [3]uint8{c.R, c.G, c.B}
		var hasFull, hasZero bool
		for _, ch := range channels {
			if ch == 255 {
				hasFull = true
			}
			if ch == 0 {
				hasZero = true
			}
		}
		if !hasFull || !hasZero {
			t.Fatalf("Expected a fully saturated color, got %v", c)
		}
		if c.A != 255 {
			t.Fatalf("Expected opaque alpha, got %d", c.A)
		}
	}
}
