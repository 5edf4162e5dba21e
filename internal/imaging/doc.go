// Package imaging bridges decoded images and the colorspace engine.
//
// It loads images from disk (PNG, JPEG, GIF, BMP, TIFF and WebP), converts
// them to the flat non-premultiplied RGBA8 buffers the colorspace package
// works on, runs adjustments and flat-colour mixes, and encodes the results
// back to PNG or to a file. Adjustments are also exposed as gift.Filter
// values so they can be chained with resizing, blurring and the other
// filters from github.com/disintegration/gift.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Every image returned by this package has its origin at (0,0), whatever
// the bounds of the source.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Adjust, HueRotate and
// MixColour never modify their input and may be called concurrently on the
// same source image.
//
// # Color Representation
//
// SampleColor reports a pixel in every model an adjustment can run in:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB and RGBA: 8-bit components (0-255)
//   - HSL and HSV: Hue (0-360), Saturation and Lightness/Value (0-1)
//   - LCh: Lightness (L*, 0-100), Chroma, Hue (0-360)
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
