package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache holds decoded source images keyed by the path they were loaded
// from. It is safe for concurrent use.
//
// Entries live until Evict or Clear. Anything that writes over a cached path
// must evict it, otherwise later loads keep returning the old pixels:
//
//	img, _ := cache.Load(path)
//	_ = Save(adjusted, path)
//	cache.Evict(path)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[string]image.Image)}
}

// Load returns the decoded image at path, reading it from disk on first use.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported. Images with an EXIF
// orientation tag are rotated upright so adjustments and samples address the
// pixels as they are displayed.
//
// Paths are cache keys as given; a relative and an absolute path to the same
// file are separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	img, ok := c.images[path]
	c.mu.RUnlock()
	if ok {
		return img, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict drops the entry for path, if any. The next Load reads from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes a source image and its colour content.
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // from the file extension, "unknown" if unrecognised

	// ColourModel is the decoded pixel layout: "rgb", "gray", "ycbcr",
	// "paletted" or "cmyk". Adjustments always work on an 8-bit RGBA copy, so
	// this only says what the file stored.
	ColourModel string `json:"colour_model"`
	ColorDepth  string `json:"color_depth"` // "8-bit" or "16-bit"

	// HasAlpha reports whether the pixel layout can carry transparency.
	// Translucent reports whether any pixel actually has alpha below 255.
	HasAlpha    bool `json:"has_alpha"`
	Translucent bool `json:"translucent"`

	// Mean is the alpha-weighted average colour of the whole image.
	Mean *ColorResult `json:"mean"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads path through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	mean, err := MeanColour(img)
	if err != nil {
		return nil, err
	}

	model, depth, alpha := describeModel(img)
	b := img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        formatFromPath(path),
		ColourModel:   model,
		ColorDepth:    depth,
		HasAlpha:      alpha,
		Translucent:   !isOpaque(img),
		Mean:          mean,
		FileSizeBytes: stat.Size(),
	}, nil
}

// MeanColour averages every pixel of img by box-resampling it to 1x1, and
// reports the result in all colour models.
func MeanColour(img image.Image) (*ColorResult, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	return SampleColor(imaging.Resize(img, 1, 1, imaging.Box), 0, 0)
}

// describeModel returns the colour model name, channel depth and whether the
// layout has an alpha channel.
func describeModel(img image.Image) (model, depth string, alpha bool) {
	depth = "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		depth = "16-bit"
	}

	switch m := img.ColorModel(); m {
	case color.GrayModel, color.Gray16Model:
		return "gray", depth, false
	case color.YCbCrModel:
		return "ycbcr", depth, false
	case color.NYCbCrAModel:
		return "ycbcr", depth, true
	case color.CMYKModel:
		return "cmyk", depth, false
	default:
		if p, ok := m.(color.Palette); ok {
			return "paletted", depth, paletteHasAlpha(p)
		}
	}
	return "rgb", depth, true
}

func paletteHasAlpha(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// isOpaque uses the image's own Opaque method when it has one, which every
// standard image type does, and scans the pixels otherwise.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}

// DimensionsResult is the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions loads path through cache and returns only its size.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &DimensionsResult{Width: b.Dx(), Height: b.Dy()}, nil
}
