package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
)

// ToNRGBA returns a copy of img as a tightly packed, non-premultiplied RGBA
// image with its origin at (0,0).
//
// The Pix slice of the result is exactly the flat RGBA8 pixel buffer the
// colorspace package operates on: width*height*4 bytes, row-major, alpha
// last. The source image is never modified.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Adjust returns a copy of img with a colour adjustment applied to every
// pixel.
//
// Parameters:
//   - img: Source image (any color model).
//   - kind: Colour model the adjustment runs in (HSL, HSV or LCh).
//   - op: Adjustment operation.
//   - amount: Amount, nominally 0-1. For ShiftHue it is a fraction of a full
//     turn (0.5 = 180 degrees).
//
// Returns:
//   - *image.NRGBA: The adjusted copy. Alpha matches the source.
//   - error: Non-nil for an unknown model or operation.
func Adjust(img image.Image, kind colorspace.Kind, op colorspace.Op, amount float64) (*image.NRGBA, error) {
	dst := ToNRGBA(img)
	b := dst.Bounds()
	if err := colorspace.Apply(dst.Pix, b.Dx(), b.Dy(), kind, op, amount); err != nil {
		return nil, fmt.Errorf("failed to adjust image: %w", err)
	}
	return dst, nil
}

// HueRotate returns a copy of img with every hue rotated by degrees in the
// given colour model.
func HueRotate(img image.Image, kind colorspace.Kind, degrees float64) (*image.NRGBA, error) {
	dst := ToNRGBA(img)
	b := dst.Bounds()
	if err := colorspace.HueRotate(dst.Pix, b.Dx(), b.Dy(), kind, degrees); err != nil {
		return nil, fmt.Errorf("failed to rotate hue: %w", err)
	}
	return dst, nil
}

// MixColour returns a copy of img blended toward a flat colour.
//
// Each channel becomes mix*opacity + original*(1-opacity), rounded and
// clamped to 0-255. Opacity 1 paints every pixel with mix; opacity 0 returns
// an unchanged copy. Alpha is preserved.
func MixColour(img image.Image, mix colorspace.RGB, opacity float64) (*image.NRGBA, error) {
	dst := ToNRGBA(img)
	b := dst.Bounds()
	if err := colorspace.Mix(dst.Pix, b.Dx(), b.Dy(), mix, opacity); err != nil {
		return nil, fmt.Errorf("failed to mix colour: %w", err)
	}
	return dst, nil
}

// nrgbaAt reads a pixel as non-premultiplied 8-bit RGBA.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
