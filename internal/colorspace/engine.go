package colorspace

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// Apply adjusts every pixel of buf in place.
//
// Parameters:
//   - buf: RGBA8 pixels, exactly width*height*4 bytes.
//   - width, height: buffer dimensions in pixels.
//   - kind: colour model the adjustment runs in.
//   - op: adjustment operation.
//   - amount: adjustment amount, nominally 0-1. For ShiftHue the amount is a
//     fraction of a full turn and is multiplied by 360.
//
// Returns:
//   - error: ErrInvalidDimensions or ErrBufferSize when the buffer does not
//     match its dimensions, ErrUnknownModel or ErrUnknownOp for values outside
//     the enumerations. The buffer is untouched on error.
//
// The alpha sample of every pixel is preserved bit for bit.
func Apply(buf []uint8, width, height int, kind Kind, op Op, amount float64) error {
	if err := checkBuffer(buf, width, height); err != nil {
		return err
	}
	adjust, err := Adjuster(kind, op, amount)
	if err != nil {
		return err
	}

	// No pixel reads another, so the result does not depend on the
	// partitioning.
	stride := width * BytesPerPixel
	parallel.Line(height, func(start, end int) {
		adjust(buf[start*stride : end*stride])
	})
	return nil
}

// Adjuster returns the per-pixel kernel behind Apply: a function that adjusts
// every whole pixel of an RGBA8 slice in place, on the calling goroutine.
// Callers that schedule rows themselves use it instead of Apply. Amounts are
// interpreted as in Apply.
func Adjuster(kind Kind, op Op, amount float64) (func(pix []uint8), error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}
	if op == ShiftHue {
		amount *= 360
	}

	switch kind {
	case HSLKind:
		return adjuster(HSLFromRGB, op, amount), nil
	case HSVKind:
		return adjuster(HSVFromRGB, op, amount), nil
	case LChKind:
		return adjuster(LChFromRGB, op, amount), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownModel, kind)
}

// ApplyNamed is Apply with a string operation name. Unrecognised names fall
// back to saturate, matching the behaviour long-standing callers rely on.
// New code should use ParseOp and Apply so typos are reported.
func ApplyNamed(buf []uint8, width, height int, kind Kind, name string, amount float64) error {
	return Apply(buf, width, height, kind, ParseOpLenient(name), amount)
}

// HueRotate rotates the hue of every pixel by degrees in the given model.
func HueRotate(buf []uint8, width, height int, kind Kind, degrees float64) error {
	return Apply(buf, width, height, kind, ShiftHue, degrees/360)
}

// adjuster runs convert -> adjust -> convert back over each whole pixel.
func adjuster[T Model[T]](from func(RGB) T, op Op, amount float64) func(pix []uint8) {
	return func(pix []uint8) {
		for i := 0; i+BytesPerPixel <= len(pix); i += BytesPerPixel {
			px := pix[i : i+3 : i+3]
			out := Adjust(from(RGB{R: px[0], G: px[1], B: px[2]}), op, amount).RGB()
			px[0], px[1], px[2] = out.R, out.G, out.B
		}
	}
}
