// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

// Keyword is a self-evaluating symbol written with a leading colon.
// The colon is not part of its name.
type Keyword string

// NewKeyword creates a keyword cell.
func NewKeyword(v string) cell.I {
	return Keyword(v)
}

// Equal returns true if c is a keyword with the same name.
func (k Keyword) Equal(c cell.I) bool {
	o, ok := c.(Keyword)

	return ok && k == o
}

// Literal returns the literal representation of the keyword k.
func (k Keyword) Literal() string {
	return ":" + string(k)
}

// Name returns the type name for the keyword k.
func (k Keyword) Name() string {
	return "keyword"
}

// String returns the literal representation of the keyword k.
func (k Keyword) String() string {
	return k.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implementsKeyword() { //nolint:deadcode,unused
	var t Keyword

	_ = cell.I(t)
	_ = literal.I(t)
	_ = common.Stringer(t)
}
