package colorspace

import "github.com/lucasb-eyer/go-colorful"

// HSV is a colour in the hue-saturation-value model.
type HSV struct {
	H float64 `json:"h"` // Hue in degrees, [0,360)
	S float64 `json:"s"` // Saturation, [0,1]
	V float64 `json:"v"` // Value, [0,1]
}

// HSVFromRGB converts an 8-bit sRGB colour to HSV over the gamma-encoded
// channels.
func HSVFromRGB(c RGB) HSV {
	h, s, v := toColorful(c).Hsv()
	return HSV{H: normalizeHue(h), S: s, V: v}
}

// RGB converts back to 8-bit sRGB.
func (c HSV) RGB() RGB {
	return fromColorful(colorful.Hsv(normalizeHue(c.H), clamp01(c.S), clamp01(c.V)))
}

func (c HSV) Saturate(amount float64) HSV {
	c.S = clamp01(c.S + amount)
	return c
}

func (c HSV) Desaturate(amount float64) HSV {
	c.S = clamp01(c.S - amount)
	return c
}

func (c HSV) Lighten(amount float64) HSV {
	c.V = clamp01(c.V + amount)
	return c
}

func (c HSV) Darken(amount float64) HSV {
	c.V = clamp01(c.V - amount)
	return c
}

func (c HSV) ShiftHue(degrees float64) HSV {
	c.H = normalizeHue(c.H + degrees)
	return c
}
