// Released under an MIT license. See LICENSE.

// Package num provides zeus's rational number type.
package num

import (
	"errors"
	"math/big"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/interface/rational"
)

const name = "rational"

// ErrZeroDenominator is returned when a rational is created with a zero denominator.
var ErrZeroDenominator = errors.New("Denominator cannot be zero") //nolint:stylecheck

// T (num) wraps Go's big.Rat type. The value is always normalised.
type T big.Rat

type num = T

// New creates a new num cell with the numerator n and denominator d.
func New(n, d int64) (cell.I, error) {
	if d == 0 {
		return nil, ErrZeroDenominator
	}

	return Rat(big.NewRat(n, d)), nil
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Denominator returns the denominator of the num n.
func (n *num) Denominator() *big.Int {
	return n.Rat().Denom()
}

// Equal returns true if c is a number with the same value as the num n.
func (n *num) Equal(c cell.I) bool {
	return number.Equal(n, c)
}

// Float returns the nearest float64 value for the num n.
func (n *num) Float() float64 {
	f, _ := n.Rat().Float64()

	return f
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	r := n.Rat()

	return r.Num().String() + "/" + r.Denom().String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Numerator returns the numerator of the num n.
func (n *num) Numerator() *big.Int {
	return n.Rat().Num()
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Literal()
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a number.
	_ = number.I(&t)

	// The num type is exact.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
