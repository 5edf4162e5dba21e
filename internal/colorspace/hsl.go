package colorspace

import "github.com/lucasb-eyer/go-colorful"

// HSL is a colour in the hue-saturation-lightness model.
type HSL struct {
	H float64 `json:"h"` // Hue in degrees, [0,360)
	S float64 `json:"s"` // Saturation, [0,1]
	L float64 `json:"l"` // Lightness, [0,1]
}

// HSLFromRGB converts an 8-bit sRGB colour to HSL. No linearization is
// applied; HSL is defined over the gamma-encoded channels.
func HSLFromRGB(c RGB) HSL {
	h, s, l := toColorful(c).Hsl()
	return HSL{H: normalizeHue(h), S: s, L: l}
}

// RGB converts back to 8-bit sRGB.
func (c HSL) RGB() RGB {
	return fromColorful(colorful.Hsl(normalizeHue(c.H), clamp01(c.S), clamp01(c.L)))
}

func (c HSL) Saturate(amount float64) HSL {
	c.S = clamp01(c.S + amount)
	return c
}

func (c HSL) Desaturate(amount float64) HSL {
	c.S = clamp01(c.S - amount)
	return c
}

func (c HSL) Lighten(amount float64) HSL {
	c.L = clamp01(c.L + amount)
	return c
}

func (c HSL) Darken(amount float64) HSL {
	c.L = clamp01(c.L - amount)
	return c
}

func (c HSL) ShiftHue(degrees float64) HSL {
	c.H = normalizeHue(c.H + degrees)
	return c
}
