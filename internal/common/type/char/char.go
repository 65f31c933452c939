// Released under an MIT license. See LICENSE.

// Package char provides zeus's character type.
package char

import (
	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

const name = "character"

// T (char) wraps Go's rune type.
type T rune

type char = T

// Names maps the names accepted after #\ to the characters they denote.
//
//nolint:gochecknoglobals
var Names = map[string]rune{
	"newline": '\n',
	"return":  '\r',
	"space":   ' ',
	"tab":     '\t',
}

// New creates a new char cell.
func New(r rune) cell.I {
	return char(r)
}

// Equal returns true if c is the same character.
func (ch char) Equal(c cell.I) bool {
	o, ok := c.(char)

	return ok && ch == o
}

// Literal returns the literal representation of the char ch.
func (ch char) Literal() string {
	switch rune(ch) {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	case '\r':
		return `#\return`
	case '\t':
		return `#\tab`
	}

	return `#\` + string(rune(ch))
}

// Name returns the type name for the char ch.
func (ch char) Name() string {
	return name
}

// String returns the character as a one character string.
func (ch char) String() string {
	return string(rune(ch))
}

// Is returns true if c is a char.
func Is(c cell.I) bool {
	_, ok := c.(char)

	return ok
}

// To returns the rune value of c if c is a char; Otherwise it panics.
func To(c cell.I) rune {
	if ch, ok := c.(char); ok {
		return rune(ch)
	}

	panic("not a " + name)
}

// Value returns the rune value of c and true, if c is a char.
func Value(c cell.I) (rune, bool) {
	ch, ok := c.(char)

	return rune(ch), ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(t)

	// The char type has a literal representation.
	_ = literal.I(t)

	// The char type is a stringer.
	_ = common.Stringer(t)
}
