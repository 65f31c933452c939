// Released under an MIT license. See LICENSE.

// Package literal defines the interface for zeus types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell.
func String(c cell.I) string {
	if c == nil {
		return "()"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
