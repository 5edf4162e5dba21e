package colorspace

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// encodedToLinear maps every 8-bit sRGB sample to linear light in [0,1].
var encodedToLinear = sync.OnceValue(func() *[256]float64 {
	var t [256]float64
	for i := range t {
		t[i], _, _ = colorful.Color{R: float64(i) / 255}.LinearRgb()
	}
	return &t
})

// linearize returns the linear-light triple for an 8-bit sRGB colour.
func linearize(c RGB) (r, g, b float64) {
	t := encodedToLinear()
	return t[c.R], t[c.G], t[c.B]
}

// encode applies the sRGB transfer function to a linear triple, clamping it
// to the displayable range first.
func encode(r, g, b float64) RGB {
	return fromColorful(colorful.LinearRgb(clamp01(r), clamp01(g), clamp01(b)))
}

// fromColorful rounds a gamma-encoded colour to 8 bits, clamping
// out-of-gamut channels rather than wrapping them.
func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{R: to8(c.R), G: to8(c.G), B: to8(c.B)}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
