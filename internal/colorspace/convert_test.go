package colorspace

import (
	"math"
	"testing"
)

// cubeStep returns the sampling stride used for exhaustive colour-cube tests.
func cubeStep(full int) int {
	if testing.Short() {
		return 17
	}
	return full
}

func TestHSLRoundTrip(t *testing.T) {
	step := cubeStep(1)
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := HSLFromRGB(c).RGB(); got != c {
					t.Fatalf("HSL round trip %v: got %v", c, got)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	step := cubeStep(1)
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := HSVFromRGB(c).RGB(); got != c {
					t.Fatalf("HSV round trip %v: got %v", c, got)
				}
			}
		}
	}
}

func TestLChRoundTrip(t *testing.T) {
	step := cubeStep(3)
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := LChFromRGB(c).RGB(); !withinOne(got, c) {
					t.Fatalf("LCh round trip %v: got %v", c, got)
				}
			}
		}
	}
}

func TestHSLFromRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{0, 1, 0.5}},
		{"green", RGB{0, 255, 0}, HSL{120, 1, 0.5}},
		{"blue", RGB{0, 0, 255}, HSL{240, 1, 0.5}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 1}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLFromRGB(tt.in)
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.S-tt.want.S) > 1e-9 || math.Abs(got.L-tt.want.L) > 1e-9 {
				t.Errorf("HSLFromRGB(%v): got %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSVFromRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"red", RGB{255, 0, 0}, HSV{0, 1, 1}},
		{"yellow", RGB{255, 255, 0}, HSV{60, 1, 1}},
		{"magenta", RGB{255, 0, 255}, HSV{300, 1, 1}},
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSVFromRGB(tt.in)
			if math.Abs(got.H-tt.want.H) > 1e-9 || math.Abs(got.S-tt.want.S) > 1e-9 || math.Abs(got.V-tt.want.V) > 1e-9 {
				t.Errorf("HSVFromRGB(%v): got %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLChFromRGB_Greys(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := LChFromRGB(RGB{uint8(v), uint8(v), uint8(v)})
		if c.C > 1e-6 || c.H != 0 {
			t.Fatalf("grey %d: got C=%g H=%g, want C=0 H=0", v, c.C, c.H)
		}
	}
}

func TestLChSaturate_GreyStaysNeutralHue(t *testing.T) {
	// A grey has no hue to push chroma along, so saturating it moves
	// along h=0 rather than towards whatever hue rounding noise suggests.
	got := LChFromRGB(RGB{128, 128, 128}).Saturate(0.1)
	if got.H != 0 {
		t.Errorf("H: got %v, want 0", got.H)
	}
	if math.Abs(got.C-10) > 1e-9 {
		t.Errorf("C: got %v, want 10", got.C)
	}
}

func TestLChFromRGB_KnownColors(t *testing.T) {
	// Reference values for sRGB primaries under D65, L*C*h(ab).
	tests := []struct {
		name string
		in   RGB
		want LCh
	}{
		{"white", RGB{255, 255, 255}, LCh{L: 100, C: 0}},
		{"black", RGB{0, 0, 0}, LCh{L: 0, C: 0}},
		{"red", RGB{255, 0, 0}, LCh{L: 53.24, C: 104.55, H: 40.0}},
		{"blue", RGB{0, 0, 255}, LCh{L: 32.30, C: 133.81, H: 306.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LChFromRGB(tt.in)
			if math.Abs(got.L-tt.want.L) > 0.1 {
				t.Errorf("L: got %.3f, want %.2f", got.L, tt.want.L)
			}
			if math.Abs(got.C-tt.want.C) > 0.2 {
				t.Errorf("C: got %.3f, want %.2f", got.C, tt.want.C)
			}
			if tt.want.C > 0 && math.Abs(got.H-tt.want.H) > 0.2 {
				t.Errorf("H: got %.3f, want %.1f", got.H, tt.want.H)
			}
		})
	}
}

func TestLCh_GamutClamp(t *testing.T) {
	// Far outside the sRGB gamut in every direction.
	tests := []LCh{
		{L: 50, C: 400, H: 10},
		{L: 180, C: 0, H: 0},
		{L: -40, C: 0, H: 0},
		{L: 90, C: 150, H: 270},
	}

	for _, c := range tests {
		got := c.RGB()
		if c.C > 0 && got == (RGB{}) && c.L > 0 {
			t.Errorf("%+v: out-of-gamut colour collapsed to black", c)
		}
		if c.L > 100 && c.C == 0 && got != (RGB{255, 255, 255}) {
			t.Errorf("%+v: got %v, want white", c, got)
		}
		if c.L < 0 && got != (RGB{0, 0, 0}) {
			t.Errorf("%+v: got %v, want black", c, got)
		}
	}
}

func TestLCh_LightnessUnclamped(t *testing.T) {
	c := LCh{L: 50, C: 20, H: 90}

	if got := c.Lighten(1).L; got != 150 {
		t.Errorf("Lighten(1).L: got %v, want 150", got)
	}
	if got := c.Darken(1).L; got != -50 {
		t.Errorf("Darken(1).L: got %v, want -50", got)
	}
}

func TestLCh_ChromaFloor(t *testing.T) {
	c := LCh{L: 50, C: 20, H: 90}

	if got := c.Desaturate(0.5).C; got != 0 {
		t.Errorf("Desaturate(0.5).C: got %v, want 0", got)
	}
	if got := c.Saturate(-1).C; got != 0 {
		t.Errorf("Saturate(-1).C: got %v, want 0", got)
	}
	if got := c.Saturate(0.1).C; math.Abs(got-30) > 1e-9 {
		t.Errorf("Saturate(0.1).C: got %v, want 30", got)
	}
}

func TestHSLOperators_Clamp(t *testing.T) {
	c := HSL{H: 200, S: 0.5, L: 0.5}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"saturate", c.Saturate(0.8).S, 1},
		{"desaturate", c.Desaturate(0.8).S, 0},
		{"lighten", c.Lighten(0.8).L, 1},
		{"darken", c.Darken(0.8).L, 0},
		{"shift hue", c.ShiftHue(200).H, 40},
		{"shift hue negative", c.ShiftHue(-220).H, 340},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestHSVOperators_Clamp(t *testing.T) {
	c := HSV{H: 10, S: 0.3, V: 0.7}

	if got := c.Saturate(2).S; got != 1 {
		t.Errorf("Saturate(2).S: got %v, want 1", got)
	}
	if got := c.Desaturate(2).S; got != 0 {
		t.Errorf("Desaturate(2).S: got %v, want 0", got)
	}
	if got := c.Lighten(0.5).V; got != 1 {
		t.Errorf("Lighten(0.5).V: got %v, want 1", got)
	}
	if got := c.Darken(0.9).V; got != 0 {
		t.Errorf("Darken(0.9).V: got %v, want 0", got)
	}
	if got := c.ShiftHue(360).H; math.Abs(got-10) > 1e-9 {
		t.Errorf("ShiftHue(360).H: got %v, want 10", got)
	}
}

func TestAdjust_UnknownOpIsIdentity(t *testing.T) {
	c := HSL{H: 10, S: 0.2, L: 0.3}
	if got := Adjust(c, Op(99), 0.5); got != c {
		t.Errorf("Adjust with unknown op: got %+v, want %+v", got, c)
	}
}
