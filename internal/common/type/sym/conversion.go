// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
)

// Is returns true if c is any kind of symbol.
func Is(c cell.I) bool {
	switch c.(type) {
	case sym, Keyword, *Uninterned:
		return true
	}

	return false
}

// IsKeyword returns true if c is a keyword.
func IsKeyword(c cell.I) bool {
	_, ok := c.(Keyword)

	return ok
}

// Text returns the name of c and true, if c is any kind of symbol.
// The leading colon is not part of a keyword's name.
func Text(c cell.I) (string, bool) {
	switch t := c.(type) {
	case sym:
		return string(t), true
	case Keyword:
		return string(t), true
	case *Uninterned:
		return t.name, true
	}

	return "", false
}

// To returns a sym if c is an interned symbol; Otherwise it panics.
func To(c cell.I) sym {
	if s, ok := c.(sym); ok {
		return s
	}

	panic("not a " + name)
}
