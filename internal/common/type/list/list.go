// Released under an MIT license. See LICENSE.

// Package list provides zeus's list type and common list operations.
// A list owns its elements. Operations that produce a new list never
// share the backing array of their arguments.
package list

import (
	"strings"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/truth"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T []cell.I

type list = T

// Null is the empty list. It is the only false value.
//
//nolint:gochecknoglobals
var Null cell.I = list{}

// Sequence is anything else that may spell out a proper list.
type Sequence interface {
	Proper() ([]cell.I, bool)
}

// New creates a new list holding a copy of elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return Null
	}

	return append(list{}, elements...)
}

// Bool returns false only for the empty list.
func (l list) Bool() bool {
	return len(l) > 0
}

// Equal returns true if c is a list, or a sequence, with elements that
// are equal to l's.
func (l list) Equal(c cell.I) bool {
	var elements []cell.I

	switch o := c.(type) {
	case list:
		elements = o
	case Sequence:
		p, ok := o.Proper()
		if !ok {
			return false
		}

		elements = p
	default:
		return false
	}

	if len(l) != len(elements) {
		return false
	}

	for i, e := range l {
		if !e.Equal(elements[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the list l.
func (l list) Literal() string {
	return Join("(", l, ")")
}

// Name returns the name for a list type.
func (l list) Name() string {
	return name
}

// Functions specific to list.

// Append returns a new list holding the elements of each list in lists.
func Append(lists ...T) cell.I {
	n := 0
	for _, l := range lists {
		n += len(l)
	}

	joined := make(list, 0, n)
	for _, l := range lists {
		joined = append(joined, l...)
	}

	return joined
}

// IsNull returns true if c is the empty list.
func IsNull(c cell.I) bool {
	l, ok := c.(list)

	return ok && len(l) == 0
}

// Join returns the literal representations of elements separated by spaces
// and wrapped in open and close.
func Join(open string, elements []cell.I, close string) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = literal.String(e)
	}

	return open + strings.Join(parts, " ") + close
}

// Reverse returns a new list with the elements of l in reverse order.
func Reverse(l T) cell.I {
	n := len(l)

	reversed := make(list, n)
	for i, e := range l {
		reversed[n-1-i] = e
	}

	return reversed
}

// Tail returns a new list holding the elements of l from index start.
func Tail(l T, start int) cell.I {
	if start >= len(l) {
		return Null
	}

	return New(l[start:]...)
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) T {
	if l, ok := c.(list); ok {
		return l
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(t)

	// The list type has a literal representation.
	_ = literal.I(t)

	// The list type has a truth value.
	_ = truth.I(t)
}
