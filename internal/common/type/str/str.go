// Released under an MIT license. See LICENSE.

// Package str provides zeus's string type.
package str

import (
	"strings"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

//nolint:gochecknoglobals
var escapes = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// New creates a new str cell.
func New(v string) cell.I {
	return str(v)
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s str) Equal(c cell.I) bool {
	o, ok := c.(str)

	return ok && s == o
}

// Literal returns the literal representation of the str s.
func (s str) Literal() string {
	return `"` + escapes.Replace(string(s)) + `"`
}

// Name returns the name of the str type.
func (s str) Name() string {
	return name
}

// String returns the text of the str s.
func (s str) String() string {
	return string(s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(str)

	return ok
}

// To returns the string value of c if c is a str; Otherwise it panics.
func To(c cell.I) string {
	if s, ok := c.(str); ok {
		return string(s)
	}

	panic("not a " + name)
}

// Value returns the string value of c and true, if c is a str.
func Value(c cell.I) (string, bool) {
	s, ok := c.(str)

	return string(s), ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(t)

	// The str type has a literal representation.
	_ = literal.I(t)

	// The str type is a stringer.
	_ = common.Stringer(t)
}
