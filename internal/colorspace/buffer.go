package colorspace

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the number of samples per pixel in an RGBA8 buffer.
const BytesPerPixel = 4

var (
	// ErrBufferSize is returned when a buffer length is not width*height*4.
	ErrBufferSize = errors.New("colorspace: buffer length does not match dimensions")

	// ErrInvalidDimensions is returned for negative width or height.
	ErrInvalidDimensions = errors.New("colorspace: invalid dimensions")
)

// RGB is a gamma-encoded sRGB colour with 8-bit components.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// checkBuffer validates that buf holds exactly width*height RGBA8 pixels.
func checkBuffer(buf []uint8, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	want := width * height * BytesPerPixel
	if height != 0 && want/height/BytesPerPixel != width {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	if len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrBufferSize, len(buf), want, width, height)
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
