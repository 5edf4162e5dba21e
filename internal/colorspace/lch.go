package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// lchScale converts an adjustment amount into L*/C* units, so an amount of
// 1.0 spans the whole lightness axis.
const lchScale = 100

// sRGBWhite is the XYZ that colorful's linear sRGB matrix assigns to
// (1,1,1). Normalising Lab against it keeps greys at a* = b* = 0; the
// library's D65 constant differs from it in the fourth decimal.
var sRGBWhite = func() [3]float64 {
	x, y, z := colorful.LinearRgbToXyz(1, 1, 1)
	return [3]float64{x, y, z}
}()

// neutralChroma is the chroma, in C* units, below which a colour is treated
// as grey. The smallest chroma of a non-grey 8-bit colour is several times
// larger.
const neutralChroma = 0.05

// LCh is a colour in CIE L*C*h(ab) with a D65 white point.
//
// L is on the L* scale (0 = black, 100 = diffuse white) and C is CIE chroma.
// Neither is normalised to [0,1]; saturated sRGB primaries reach a chroma of
// roughly 130.
type LCh struct {
	L float64 `json:"l"` // Lightness, L* units
	C float64 `json:"c"` // Chroma, non-negative
	H float64 `json:"h"` // Hue in degrees, [0,360)
}

// LChFromRGB converts an 8-bit sRGB colour to LCh. The channels are
// linearized before the XYZ transform.
func LChFromRGB(c RGB) LCh {
	r, g, b := linearize(c)
	x, y, z := colorful.LinearRgbToXyz(r, g, b)
	l, a, bb := colorful.XyzToLabWhiteRef(x, y, z, sRGBWhite)

	chroma := math.Hypot(a, bb) * lchScale
	if chroma < neutralChroma {
		return LCh{L: l * lchScale}
	}
	return LCh{
		L: l * lchScale,
		C: chroma,
		H: normalizeHue(math.Atan2(bb, a) * 180 / math.Pi),
	}
}

// RGB converts back to 8-bit sRGB. Results outside the sRGB gamut are
// clamped per channel in linear light before the transfer function is
// reapplied.
func (c LCh) RGB() RGB {
	rad := c.H * math.Pi / 180
	chroma := math.Max(c.C, 0) / lchScale
	a := chroma * math.Cos(rad)
	b := chroma * math.Sin(rad)
	return encode(colorful.XyzToLinearRgb(colorful.LabToXyzWhiteRef(c.L/lchScale, a, b, sRGBWhite)))
}

func (c LCh) Saturate(amount float64) LCh {
	c.C = math.Max(c.C+amount*lchScale, 0)
	return c
}

func (c LCh) Desaturate(amount float64) LCh {
	c.C = math.Max(c.C-amount*lchScale, 0)
	return c
}

// Lighten raises L* without clamping; LCh lightness has no [0,1] ceiling and
// overshoot is resolved by the gamut clamp in RGB.
func (c LCh) Lighten(amount float64) LCh {
	c.L += amount * lchScale
	return c
}

func (c LCh) Darken(amount float64) LCh {
	c.L -= amount * lchScale
	return c
}

func (c LCh) ShiftHue(degrees float64) LCh {
	c.H = normalizeHue(c.H + degrees)
	return c
}
