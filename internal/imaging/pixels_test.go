package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
)

func near8(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func nearNRGBA(a, b color.NRGBA) bool {
	return near8(a.R, b.R) && near8(a.G, b.G) && near8(a.B, b.B) && a.A == b.A
}

func TestToNRGBA(t *testing.T) {
	src := createPatternImage(10, 6)
	sub := src.SubImage(image.Rect(5, 0, 10, 3))

	got := ToNRGBA(sub)
	if got.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("bounds: got %v, want origin-based 5x3", got.Bounds())
	}
	if len(got.Pix) != 5*3*colorspace.BytesPerPixel {
		t.Errorf("Pix length: got %d, want %d", len(got.Pix), 5*3*colorspace.BytesPerPixel)
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("pixel (0,0): got %v, want green", c)
	}
}

func TestAdjust(t *testing.T) {
	img := createInMemoryImage(8, 8, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name   string
		kind   colorspace.Kind
		op     colorspace.Op
		amount float64
		want   color.NRGBA
	}{
		{"hsl desaturate fully", colorspace.HSLKind, colorspace.Desaturate, 1, color.NRGBA{128, 128, 128, 255}},
		{"hsl lighten fully", colorspace.HSLKind, colorspace.Lighten, 1, color.NRGBA{255, 255, 255, 255}},
		{"hsv darken fully", colorspace.HSVKind, colorspace.Darken, 1, color.NRGBA{0, 0, 0, 255}},
		{"hsv shift third", colorspace.HSVKind, colorspace.ShiftHue, 1.0 / 3, color.NRGBA{0, 255, 0, 255}},
		{"zero amount", colorspace.LChKind, colorspace.Saturate, 0, color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Adjust(img, tt.kind, tt.op, tt.amount)
			if err != nil {
				t.Fatalf("Adjust failed: %v", err)
			}
			if c := got.NRGBAAt(3, 3); !nearNRGBA(c, tt.want) {
				t.Errorf("pixel: got %v, want %v", c, tt.want)
			}
		})
	}
}

func TestAdjust_SourceUnchanged(t *testing.T) {
	img := createPatternImage(10, 10)
	before := append([]uint8(nil), img.Pix...)

	if _, err := Adjust(img, colorspace.HSLKind, colorspace.Darken, 0.5); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("source modified at byte %d", i)
		}
	}
}

func TestAdjust_PreservesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{200, 60, 30, uint8(x * 80)})
	}

	got, err := Adjust(img, colorspace.LChKind, colorspace.Lighten, 0.2)
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	for x := 0; x < 4; x++ {
		if a := got.NRGBAAt(x, 0).A; a != uint8(x*80) {
			t.Errorf("alpha at %d: got %d, want %d", x, a, x*80)
		}
	}
}

func TestAdjust_UnknownModel(t *testing.T) {
	img := createInMemoryImage(2, 2, color.RGBA{1, 2, 3, 255})

	_, err := Adjust(img, colorspace.Kind(42), colorspace.Saturate, 0.1)
	if !errors.Is(err, colorspace.ErrUnknownModel) {
		t.Errorf("got %v, want ErrUnknownModel", err)
	}
	_, err = Adjust(img, colorspace.HSVKind, colorspace.Op(42), 0.1)
	if !errors.Is(err, colorspace.ErrUnknownOp) {
		t.Errorf("got %v, want ErrUnknownOp", err)
	}
}

func TestHueRotate(t *testing.T) {
	img := createInMemoryImage(4, 4, color.RGBA{255, 0, 0, 255})

	got, err := HueRotate(img, colorspace.HSLKind, 240)
	if err != nil {
		t.Fatalf("HueRotate failed: %v", err)
	}
	if c := got.NRGBAAt(0, 0); !nearNRGBA(c, color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel: got %v, want blue", c)
	}

	if _, err := HueRotate(img, colorspace.Kind(0), 10); !errors.Is(err, colorspace.ErrUnknownModel) {
		t.Errorf("got %v, want ErrUnknownModel", err)
	}
}

func TestMixColour(t *testing.T) {
	img := createPatternImage(10, 10)
	mix := colorspace.RGB{R: 50, G: 255, B: 254}

	full, err := MixColour(img, mix, 1)
	if err != nil {
		t.Fatalf("MixColour failed: %v", err)
	}
	if c := full.NRGBAAt(9, 9); c != (color.NRGBA{50, 255, 254, 255}) {
		t.Errorf("full opacity: got %v, want mix colour", c)
	}

	none, err := MixColour(img, mix, 0)
	if err != nil {
		t.Fatalf("MixColour failed: %v", err)
	}
	if c := none.NRGBAAt(0, 0); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("zero opacity: got %v, want unchanged red", c)
	}
}
