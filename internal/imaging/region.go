package imaging

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
)

// Region is a rectangle in image coordinates. (X1,Y1) is inclusive and
// (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect validates r against bounds and returns it as a rectangle.
func (r Region) Rect(bounds image.Rectangle) (image.Rectangle, error) {
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2), nil
}

// AreaNames lists the names accepted by NamedRegion.
func AreaNames() []string {
	return []string{"top-left", "top-right", "bottom-left", "bottom-right",
		"top-half", "bottom-half", "left-half", "right-half", "center"}
}

// NamedRegion returns a named area of an image with the given bounds.
// "center" is the middle 50% in each direction.
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown area: %s", name)
	}

	off := bounds.Min
	return Region{X1: x1 + off.X, Y1: y1 + off.Y, X2: x2 + off.X, Y2: y2 + off.Y}, nil
}

// ApplyFiltersToRegion runs filters over the part of img inside r and
// returns a copy of the whole image with only that part changed. Filters
// that change the size of their input are not supported here: their output
// is clipped to the region.
func ApplyFiltersToRegion(img image.Image, r Region, filters ...gift.Filter) (*image.NRGBA, error) {
	rect, err := r.Rect(img.Bounds())
	if err != nil {
		return nil, err
	}

	dst := ToNRGBA(img)
	part := ApplyFilters(imaging.Crop(img, rect), filters...)
	local := rect.Sub(img.Bounds().Min)
	draw.Draw(dst, local, part, image.Point{}, draw.Src)
	return dst, nil
}
