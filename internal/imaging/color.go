package imaging

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// ColorResult contains a color value in multiple representations.
//
// The same color is reported in every model the adjustment tools operate in,
// so a caller can predict the effect of an adjustment before applying it:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Straight (non-premultiplied) 8-bit components without alpha
//   - RGBA: 8-bit components with alpha for transparency
//   - HSL: Hue (0-360), Saturation (0-1), Lightness (0-1)
//   - HSV: Hue (0-360), Saturation (0-1), Value (0-1)
//   - LCh: Lightness (L*, 0-100), Chroma, Hue (0-360)
type ColorResult struct {
	Hex  string         `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  colorspace.RGB `json:"rgb"`  // RGB components
	RGBA RGBAColor      `json:"rgba"` // RGBA components with alpha
	HSL  colorspace.HSL `json:"hsl"`  // HSL representation
	HSV  colorspace.HSV `json:"hsv"`  // HSV representation
	LCh  colorspace.LCh `json:"lch"`  // CIE LCh(ab) representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The pixel is read as non-premultiplied 8-bit RGBA, the same representation
// the adjustment pipeline works on, so the reported models match what an
// adjustment will see. Model components are rounded to four decimals.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	px := nrgbaAt(img, x, y)
	rgb := colorspace.RGB{R: px.R, G: px.G, B: px.B}

	hsl := colorspace.HSLFromRGB(rgb)
	hsv := colorspace.HSVFromRGB(rgb)
	lch := colorspace.LChFromRGB(rgb)

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B),
		RGB:  rgb,
		RGBA: RGBAColor{R: px.R, G: px.G, B: px.B, A: px.A},
		HSL:  colorspace.HSL{H: round4(hsl.H), S: round4(hsl.S), L: round4(hsl.L)},
		HSV:  colorspace.HSV{H: round4(hsv.H), S: round4(hsv.S), V: round4(hsv.V)},
		LCh:  colorspace.LCh{L: round4(lch.L), C: round4(lch.C), H: round4(lch.H)},
	}, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// Returns an error if any coordinate is outside the image bounds. On error, no
// partial results are returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ParseColour parses a colour given as "#RRGGBB", "#RGB" or a decimal
// "r,g,b" triple with components 0-255.
func ParseColour(s string) (colorspace.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorspace.RGB{}, fmt.Errorf("empty color string")
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return colorspace.RGB{}, fmt.Errorf("invalid color %q: want r,g,b", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return colorspace.RGB{}, fmt.Errorf("invalid color component %q: %w", p, err)
			}
			rgb[i] = uint8(v)
		}
		return colorspace.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorspace.RGB{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorspace.RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return colorspace.RGB{R: to8(c.R), G: to8(c.G), B: to8(c.B)}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
