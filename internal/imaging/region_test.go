package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
)

func TestRegion_Rect(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)

	tests := []struct {
		name    string
		region  Region
		wantErr bool
	}{
		{"full image", Region{0, 0, 100, 80}, false},
		{"inner", Region{10, 10, 20, 30}, false},
		{"negative x", Region{-1, 0, 10, 10}, true},
		{"too wide", Region{0, 0, 101, 10}, true},
		{"too tall", Region{0, 0, 10, 81}, true},
		{"empty width", Region{10, 10, 10, 20}, true},
		{"inverted", Region{20, 20, 10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rect, err := tt.region.Rect(bounds)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Rect(%+v) should fail", tt.region)
				}
				return
			}
			if err != nil {
				t.Fatalf("Rect(%+v) failed: %v", tt.region, err)
			}
			if rect != image.Rect(tt.region.X1, tt.region.Y1, tt.region.X2, tt.region.Y2) {
				t.Errorf("Rect: got %v", rect)
			}
		})
	}
}

func TestNamedRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)

	tests := map[string]Region{
		"top-left":     {0, 0, 50, 40},
		"top-right":    {50, 0, 100, 40},
		"bottom-left":  {0, 40, 50, 80},
		"bottom-right": {50, 40, 100, 80},
		"top-half":     {0, 0, 100, 40},
		"bottom-half":  {0, 40, 100, 80},
		"left-half":    {0, 0, 50, 80},
		"right-half":   {50, 0, 100, 80},
		"center":       {25, 20, 75, 60},
	}

	if len(tests) != len(AreaNames()) {
		t.Fatalf("AreaNames lists %d areas, test covers %d", len(AreaNames()), len(tests))
	}

	for _, name := range AreaNames() {
		t.Run(name, func(t *testing.T) {
			got, err := NamedRegion(bounds, name)
			if err != nil {
				t.Fatalf("NamedRegion(%s) failed: %v", name, err)
			}
			if got != tests[name] {
				t.Errorf("NamedRegion(%s): got %+v, want %+v", name, got, tests[name])
			}
		})
	}

	if _, err := NamedRegion(bounds, "middle"); err == nil {
		t.Error("NamedRegion should fail for an unknown area")
	}
}

func TestNamedRegion_OffsetBounds(t *testing.T) {
	got, err := NamedRegion(image.Rect(10, 20, 30, 40), "bottom-right")
	if err != nil {
		t.Fatalf("NamedRegion failed: %v", err)
	}
	if got != (Region{20, 30, 30, 40}) {
		t.Errorf("got %+v, want {20 30 30 40}", got)
	}
}

func TestApplyFiltersToRegion(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{255, 0, 0, 255})

	out, err := ApplyFiltersToRegion(img, Region{5, 5, 10, 10},
		MustAdjustFilter(colorspace.HSVKind, colorspace.ShiftHue, 1.0/3))
	if err != nil {
		t.Fatalf("ApplyFiltersToRegion failed: %v", err)
	}

	if c := out.NRGBAAt(7, 7); !nearNRGBA(c, color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("inside region: got %v, want green", c)
	}
	for _, p := range []image.Point{{4, 4}, {10, 10}, {0, 19}, {9, 10}} {
		if c := out.NRGBAAt(p.X, p.Y); c != (color.NRGBA{255, 0, 0, 255}) {
			t.Errorf("outside region at %v: got %v, want red", p, c)
		}
	}
}

func TestApplyFiltersToRegion_Invalid(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	if _, err := ApplyFiltersToRegion(img, Region{0, 0, 11, 5}, MixFilter(colorspace.RGB{}, 1)); err == nil {
		t.Error("ApplyFiltersToRegion should fail for a region outside the image")
	}
}
