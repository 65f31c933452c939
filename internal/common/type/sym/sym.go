// Released under an MIT license. See LICENSE.

// Package sym provides zeus's symbol cell types: interned symbols,
// keywords and the uninterned symbols produced by gensym.
package sym

import (
	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is an interned symbol. Interned symbols with the same name are equal.
type T string

type sym = T

// True is the canonical true value.
const True = sym("t")

// New creates a sym cell.
func New(v string) cell.I {
	return sym(v)
}

// Equal returns true if c is a sym and wraps the same string.
func (s sym) Equal(c cell.I) bool {
	o, ok := c.(sym)

	return ok && s == o
}

// Literal returns the literal representation of the sym s.
func (s sym) Literal() string {
	return string(s)
}

// Name returns the type name for the sym s.
func (s sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s sym) String() string {
	return string(s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(t)

	// The sym type has a literal representation.
	_ = literal.I(t)

	// The sym type is a stringer.
	_ = common.Stringer(t)
}
