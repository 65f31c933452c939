// Released under an MIT license. See LICENSE.

// Package number defines the interface shared by all of zeus's numeric types.
package number

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/rational"
)

// I (number) is any numeric cell. Every number has a float64 approximation.
type I interface {
	cell.I
	Float() float64
}

// Is returns true if c is a number.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// Compare orders the numbers a and b. Two exact numbers are compared exactly.
// Otherwise both are compared as float64 values.
func Compare(a, b I) int {
	x, xok := rational.Number(a)
	y, yok := rational.Number(b)

	if xok && yok {
		return x.Cmp(y)
	}

	f, g := a.Float(), b.Float()

	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	}

	return 0
}

// Equal returns true if a and c are both numbers with the same value.
func Equal(a I, c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return false
	}

	return Compare(a, b) == 0
}
