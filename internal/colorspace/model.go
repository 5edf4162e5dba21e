package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownOp is returned for an operation outside the Op enumeration.
	ErrUnknownOp = errors.New("colorspace: unknown operation")

	// ErrUnknownModel is returned for a colour model outside the Kind enumeration.
	ErrUnknownModel = errors.New("colorspace: unknown colour model")
)

// Kind selects the colour model an adjustment runs in.
type Kind int

const (
	HSLKind Kind = iota + 1
	HSVKind
	LChKind
)

var kindNames = map[Kind]string{
	HSLKind: "hsl",
	HSVKind: "hsv",
	LChKind: "lch",
}

// Valid reports whether k is one of the defined models.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindNames lists the accepted model names in declaration order.
func KindNames() []string {
	return []string{"hsl", "hsv", "lch"}
}

// ParseKind parses a model name ("hsl", "hsv" or "lch", case-insensitive).
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Op is an adjustment operation.
type Op int

const (
	Saturate Op = iota + 1
	Desaturate
	Lighten
	Darken
	ShiftHue
)

var opNames = map[Op]string{
	Saturate:   "saturate",
	Desaturate: "desaturate",
	Lighten:    "lighten",
	Darken:     "darken",
	ShiftHue:   "shift_hue",
}

// Valid reports whether o is one of the defined operations.
func (o Op) Valid() bool {
	_, ok := opNames[o]
	return ok
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// OpNames lists the accepted operation names in declaration order.
func OpNames() []string {
	return []string{"saturate", "desaturate", "lighten", "darken", "shift_hue"}
}

// ParseOp parses an operation name. Unknown names are an error.
func ParseOp(s string) (Op, error) {
	for o, n := range opNames {
		if n == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// ParseOpLenient parses an operation name the way older callers expect:
// any unrecognised name selects Saturate.
func ParseOpLenient(s string) Op {
	o, err := ParseOp(s)
	if err != nil {
		return Saturate
	}
	return o
}

// Model is a colour value in one of the cylindrical models. Every operation
// returns a new value of the same model; the receiver is not modified.
type Model[T any] interface {
	Saturate(amount float64) T
	Desaturate(amount float64) T
	Lighten(amount float64) T
	Darken(amount float64) T
	ShiftHue(degrees float64) T
	RGB() RGB
}

// Adjust applies op to c. For ShiftHue the amount is in degrees.
// Unknown operations return c unchanged; Apply rejects them before any pixel
// is touched.
func Adjust[T Model[T]](c T, op Op, amount float64) T {
	switch op {
	case Saturate:
		return c.Saturate(amount)
	case Desaturate:
		return c.Desaturate(amount)
	case Lighten:
		return c.Lighten(amount)
	case Darken:
		return c.Darken(amount)
	case ShiftHue:
		return c.ShiftHue(amount)
	}
	return c
}

// normalizeHue wraps degrees into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
