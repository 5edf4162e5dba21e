package colorspace

// Named effects. Each one is shorthand for Apply, HueRotate or Mix with the
// model and operation fixed; level is nominally 0-1.

// SaturateHSL increases saturation in HSL.
func SaturateHSL(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSLKind, Saturate, level)
}

// SaturateHSV increases saturation in HSV.
func SaturateHSV(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSVKind, Saturate, level)
}

// SaturateLCh increases chroma in LCh.
func SaturateLCh(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, LChKind, Saturate, level)
}

// DesaturateHSL decreases saturation in HSL.
func DesaturateHSL(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSLKind, Desaturate, level)
}

// DesaturateHSV decreases saturation in HSV.
func DesaturateHSV(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSVKind, Desaturate, level)
}

// DesaturateLCh decreases chroma in LCh.
func DesaturateLCh(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, LChKind, Desaturate, level)
}

// LightenHSL raises lightness in HSL.
func LightenHSL(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSLKind, Lighten, level)
}

// LightenHSV raises value in HSV.
func LightenHSV(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSVKind, Lighten, level)
}

// LightenLCh raises L* in LCh.
func LightenLCh(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, LChKind, Lighten, level)
}

// DarkenHSL lowers lightness in HSL.
func DarkenHSL(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSLKind, Darken, level)
}

// DarkenHSV lowers value in HSV.
func DarkenHSV(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, HSVKind, Darken, level)
}

// DarkenLCh lowers L* in LCh.
func DarkenLCh(buf []uint8, width, height int, level float64) error {
	return Apply(buf, width, height, LChKind, Darken, level)
}

// HueRotateHSL rotates hue by degrees in HSL.
func HueRotateHSL(buf []uint8, width, height int, degrees float64) error {
	return HueRotate(buf, width, height, HSLKind, degrees)
}

// HueRotateHSV rotates hue by degrees in HSV.
func HueRotateHSV(buf []uint8, width, height int, degrees float64) error {
	return HueRotate(buf, width, height, HSVKind, degrees)
}

// HueRotateLCh rotates hue by degrees in LCh.
func HueRotateLCh(buf []uint8, width, height int, degrees float64) error {
	return HueRotate(buf, width, height, LChKind, degrees)
}

// MixWithColour blends the buffer toward mix at the given opacity.
func MixWithColour(buf []uint8, width, height int, mix RGB, opacity float64) error {
	return Mix(buf, width, height, mix, opacity)
}
