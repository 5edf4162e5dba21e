package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/gift"
	"github.com/ironsheep/colourspace-mcp/internal/colorspace"
)

// pixelFilter adapts an in-place RGBA8 buffer operation to gift.Filter so
// colour adjustments can be chained with any other gift filter:
//
//	g := gift.New(
//	    gift.Resize(800, 0, gift.LanczosResampling),
//	    imaging.MustAdjustFilter(colorspace.LChKind, colorspace.Saturate, 0.2),
//	)
//	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
//	g.Draw(dst, src)
type pixelFilter struct {
	// adjust rewrites every whole RGBA8 pixel of a slice in place. It is
	// built from an already validated model and operation, so it cannot fail.
	adjust func(pix []uint8)
}

func (f *pixelFilter) Bounds(srcBounds image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, srcBounds.Dx(), srcBounds.Dy())
}

// Draw honours options.Parallelization; a nil options runs in parallel, as
// gift's own default does.
func (f *pixelFilter) Draw(dst draw.Image, src image.Image, options *gift.Options) {
	out := ToNRGBA(src)
	b := out.Bounds()
	rows := func(start, end int) {
		f.adjust(out.Pix[start*out.Stride : end*out.Stride])
	}
	if options != nil && !options.Parallelization {
		rows(0, b.Dy())
	} else {
		parallel.Line(b.Dy(), rows)
	}
	copyInto(dst, out)
}

// copyInto writes src into dst starting at dst's origin. NRGBA destinations
// get a byte copy so alpha and colour survive exactly.
func copyInto(dst draw.Image, src *image.NRGBA) {
	db := dst.Bounds()
	if d, ok := dst.(*image.NRGBA); ok {
		w := min(db.Dx(), src.Rect.Dx()) * 4
		for y := 0; y < min(db.Dy(), src.Rect.Dy()); y++ {
			do := d.PixOffset(db.Min.X, db.Min.Y+y)
			so := y * src.Stride
			copy(d.Pix[do:do+w], src.Pix[so:so+w])
		}
		return
	}
	draw.Draw(dst, db, src, image.Point{}, draw.Src)
}

// AdjustFilter returns a gift filter applying op in the given colour model.
// See Adjust for the meaning of amount.
func AdjustFilter(kind colorspace.Kind, op colorspace.Op, amount float64) (gift.Filter, error) {
	adjust, err := colorspace.Adjuster(kind, op, amount)
	if err != nil {
		return nil, err
	}
	return &pixelFilter{adjust: adjust}, nil
}

// MustAdjustFilter is like AdjustFilter but panics on an unknown model or
// operation.
func MustAdjustFilter(kind colorspace.Kind, op colorspace.Op, amount float64) gift.Filter {
	f, err := AdjustFilter(kind, op, amount)
	if err != nil {
		panic(err)
	}
	return f
}

// HueRotateFilter returns a gift filter rotating hue by degrees.
func HueRotateFilter(kind colorspace.Kind, degrees float64) (gift.Filter, error) {
	return AdjustFilter(kind, colorspace.ShiftHue, degrees/360)
}

// MixFilter returns a gift filter blending toward a flat colour.
func MixFilter(mix colorspace.RGB, opacity float64) gift.Filter {
	return &pixelFilter{adjust: colorspace.NewLookupTable(mix, opacity).Map}
}

// ApplyFilters runs img through filters in order and returns the result.
// With no filters it returns a packed copy of img.
func ApplyFilters(img image.Image, filters ...gift.Filter) *image.NRGBA {
	if len(filters) == 0 {
		return ToNRGBA(img)
	}
	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
