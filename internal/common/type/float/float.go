// Released under an MIT license. See LICENSE.

// Package float provides zeus's floating point type.
package float

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

type float = T

// New creates a new float cell.
func New(f float64) cell.I {
	return float(f)
}

// Parse creates a new float cell from its decimal text.
func Parse(s string) (cell.I, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(f), nil
}

// Equal returns true if c is a number with the same value as f.
func (f float) Equal(c cell.I) bool {
	return number.Equal(f, c)
}

// Float returns the value of the float f.
func (f float) Float() float64 {
	return float64(f)
}

// Literal returns the literal representation of the float f.
// Integral values keep a trailing ".0" so they read back as floats.
func (f float) Literal() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}

	return s + ".0"
}

// Name returns the type name for the float f.
func (f float) Name() string {
	return name
}

// String returns the text of the float f.
func (f float) String() string {
	return f.Literal()
}

// Is returns true if c is a float.
func Is(c cell.I) bool {
	_, ok := c.(float)

	return ok
}

// To returns the float64 value of c if c is a float; Otherwise it panics.
func To(c cell.I) float64 {
	if f, ok := c.(float); ok {
		return float64(f)
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t float

	// The float type is a cell.
	_ = cell.I(t)

	// The float type has a literal representation.
	_ = literal.I(t)

	// The float type is a number.
	_ = number.I(t)

	// The float type is a stringer.
	_ = common.Stringer(t)
}
