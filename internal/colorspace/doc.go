// Package colorspace implements per-pixel colour adjustments on flat RGBA8
// pixel buffers.
//
// Each pixel is converted from gamma-encoded sRGB into one of three
// cylindrical colour models, adjusted, and converted back in place. A second,
// simpler pipeline blends every pixel toward a flat colour through a
// precomputed lookup table without leaving sRGB.
//
// # Buffers
//
// A pixel buffer is a []uint8 of interleaved R, G, B, A samples whose length
// is exactly width*height*4. The alpha sample of every pixel is never
// modified. Buffers whose length does not match the dimensions are rejected
// with ErrBufferSize before any byte is touched.
//
// # Colour Models
//
//   - HSL: hue (0-360 degrees), saturation and lightness (0-1)
//   - HSV: hue (0-360 degrees), saturation and value (0-1)
//   - LCh: CIE L*C*h(ab) with a D65 white point. Lightness is on the L* scale
//     (0-100), chroma is unbounded. Conversion goes through linear light.
//
// # Adjustments
//
// Five operations are supported: Saturate, Desaturate, Lighten, Darken and
// ShiftHue. Amounts are nominally 0-1 and are not validated; out-of-range
// values extrapolate and the result is clamped to the displayable RGB cube.
// ShiftHue amounts passed to Apply are fractions of a full turn (1.0 = 360
// degrees); HueRotate takes degrees directly.
//
// # Thread Safety
//
// All functions are stateless. Work on a single buffer is split across
// goroutines by row, which produces exactly the same bytes as a sequential
// pass. Callers must not run two operations on the same buffer at once.
package colorspace
