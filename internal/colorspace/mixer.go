package colorspace

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// LookupTable maps each 8-bit input sample to its blended output, one table
// per colour channel (R, G, B).
type LookupTable [3][256]uint8

// NewLookupTable precomputes the blend of every channel value toward mix:
//
//	table[c][i] = clamp(round(i*(1-opacity) + mix_c*opacity), 0, 255)
//
// Opacity is not validated; values outside 0-1 extrapolate and are clamped.
func NewLookupTable(mix RGB, opacity float64) *LookupTable {
	retain := 1 - opacity
	offsets := [3]float64{
		float64(mix.R) * opacity,
		float64(mix.G) * opacity,
		float64(mix.B) * opacity,
	}

	var t LookupTable
	for c, offset := range offsets {
		for i := 0; i < 256; i++ {
			v := math.Round(float64(i)*retain + offset)
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			t[c][i] = uint8(v)
		}
	}
	return &t
}

// Apply replaces the colour samples of every pixel in buf through the table.
// Alpha is untouched. Trailing bytes that do not form a whole pixel are
// ignored; use Mix to have the buffer validated against its dimensions.
func (t *LookupTable) Apply(buf []uint8) {
	pixels := len(buf) / BytesPerPixel
	parallel.Line(pixels, func(start, end int) {
		t.Map(buf[start*BytesPerPixel : end*BytesPerPixel])
	})
}

// Map is Apply on the calling goroutine.
func (t *LookupTable) Map(pix []uint8) {
	for i := 0; i+BytesPerPixel <= len(pix); i += BytesPerPixel {
		pix[i] = t[0][pix[i]]
		pix[i+1] = t[1][pix[i+1]]
		pix[i+2] = t[2][pix[i+2]]
	}
}

// Mix blends every pixel of buf toward a flat colour:
//
//	result = mix*opacity + original*(1-opacity)
//
// per colour channel, computed through a LookupTable so the per-pixel work
// is three array lookups. The buffer must hold exactly width*height pixels.
func Mix(buf []uint8, width, height int, mix RGB, opacity float64) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}
	NewLookupTable(mix, opacity).Apply(buf)
	return nil
}
