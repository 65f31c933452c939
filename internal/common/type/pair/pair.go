// Released under an MIT license. See LICENSE.

// Package pair provides zeus's cons cell type. A pair is only created when
// the second argument to cons is not a list.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
)

const name = "cons"

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Car returns the car/head/first member of the pair p.
func (p *pair) Car() cell.I {
	return p.car
}

// Cdr returns the cdr/tail/rest member of the pair p.
func (p *pair) Cdr() cell.I {
	return p.cdr
}

// Equal returns true if c is a pair with elements that are equal to p's,
// or a list that holds the same proper sequence.
func (p *pair) Equal(c cell.I) bool {
	switch o := c.(type) {
	case *pair:
		return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
	case list.T:
		return o.Equal(p)
	}

	return false
}

// Literal returns the literal representation of the pair p.
// A chain of pairs ending in a list is written as a single list.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(literal.String(p.car))

	tail := p.cdr

	for {
		if next, ok := tail.(*pair); ok {
			b.WriteString(" ")
			b.WriteString(literal.String(next.car))
			tail = next.cdr

			continue
		}

		if l, ok := tail.(list.T); ok {
			for _, e := range l {
				b.WriteString(" ")
				b.WriteString(literal.String(e))
			}
		} else {
			b.WriteString(" . ")
			b.WriteString(literal.String(tail))
		}

		break
	}

	b.WriteString(")")

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// Proper returns the elements of p and true if the chain of pairs
// starting at p ends in a list.
func (p *pair) Proper() ([]cell.I, bool) {
	elements := []cell.I{p.car}

	for tail := p.cdr; ; {
		switch t := tail.(type) {
		case *pair:
			elements = append(elements, t.car)
			tail = t.cdr
		case list.T:
			return append(elements, t...), true
		default:
			return nil, false
		}
	}
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
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type can be compared to a list.
	_ = list.Sequence(&t)
}
