// Released under an MIT license. See LICENSE.

// Package rational defines the interface for zeus's exact numeric types.
package rational

import (
	"math/big"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
)

// I (rational) is anything that can be treated as an exact number in zeus.
type I interface {
	Rat() *big.Rat
}

type rational = I

// Number returns the *big.Rat value for a cell, if it has one.
func Number(c cell.I) (*big.Rat, bool) {
	r, ok := c.(rational)
	if !ok {
		return nil, false
	}

	return r.Rat(), true
}
