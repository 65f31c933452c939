// Released under an MIT license. See LICENSE.

// Package integer provides zeus's integer type.
package integer

import (
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/interface/rational"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

type integer = T

// New creates a new integer cell.
func New(i int64) cell.I {
	return integer(i)
}

// Parse creates a new integer cell from its decimal text.
func Parse(s string) (cell.I, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(i), nil
}

// Equal returns true if c is a number with the same value as i.
func (i integer) Equal(c cell.I) bool {
	return number.Equal(i, c)
}

// Float returns the value of the integer i as a float64.
func (i integer) Float() float64 {
	return float64(i)
}

// Int returns the value of the integer i.
func (i integer) Int() int64 {
	return int64(i)
}

// Literal returns the literal representation of the integer i.
func (i integer) Literal() string {
	return strconv.FormatInt(int64(i), 10)
}

// Name returns the type name for the integer i.
func (i integer) Name() string {
	return name
}

// Rat returns the value of the integer i as a *big.Rat.
func (i integer) Rat() *big.Rat {
	return big.NewRat(int64(i), 1)
}

// String returns the text of the integer i.
func (i integer) String() string {
	return i.Literal()
}

// Is returns true if c is an integer.
func Is(c cell.I) bool {
	_, ok := c.(integer)

	return ok
}

// To returns the int64 value of c if c is an integer; Otherwise it panics.
func To(c cell.I) int64 {
	if i, ok := c.(integer); ok {
		return int64(i)
	}

	panic("not an " + name)
}

// Value returns the int64 value of c and true, if c is an integer.
func Value(c cell.I) (int64, bool) {
	i, ok := c.(integer)

	return int64(i), ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(t)

	// The integer type has a literal representation.
	_ = literal.I(t)

	// The integer type is a number.
	_ = number.I(t)

	// The integer type is exact.
	_ = rational.I(t)

	// The integer type is a stringer.
	_ = common.Stringer(t)
}
