// Released under an MIT license. See LICENSE.

// Package vector provides zeus's vector type. Vectors are persistent:
// setting an element returns a new vector and leaves the original intact.
package vector

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
)

const name = "vector"

// MaxLength is the length of the longest vector Make will create.
const MaxLength = 1 << 24

// T (vector) is a persistent, indexed sequence of cells.
type T struct {
	elements *immutable.List[cell.I]
}

type vector = T

// New creates a new vector holding elements.
func New(elements ...cell.I) *T {
	return &vector{elements: immutable.NewList(elements...)}
}

// Make creates a new vector of length n with every element set to fill.
func Make(n int64, fill cell.I) (*T, error) {
	if n < 0 || n > MaxLength {
		return nil, fmt.Errorf("vector length %d is outside 0 to %d", n, MaxLength)
	}

	b := immutable.NewListBuilder[cell.I]()
	for i := int64(0); i < n; i++ {
		b.Append(fill)
	}

	return &vector{elements: b.List()}, nil
}

// Elements returns the elements of the vector v as a slice.
func (v *vector) Elements() []cell.I {
	elements := make([]cell.I, 0, v.elements.Len())

	for itr := v.elements.Iterator(); !itr.Done(); {
		_, e := itr.Next()
		elements = append(elements, e)
	}

	return elements
}

// Equal returns true if c is a vector with elements that are equal to v's.
func (v *vector) Equal(c cell.I) bool {
	o, ok := c.(*vector)
	if !ok || v.Len() != o.Len() {
		return false
	}

	for i := 0; i < v.Len(); i++ {
		if !v.elements.Get(i).Equal(o.elements.Get(i)) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in the vector v.
func (v *vector) Len() int {
	return v.elements.Len()
}

// Literal returns the literal representation of the vector v.
func (v *vector) Literal() string {
	return list.Join("[", v.Elements(), "]")
}

// Name returns the name for a vector type.
func (v *vector) Name() string {
	return name
}

// Ref returns the element at index i.
func (v *vector) Ref(i int64) (cell.I, error) {
	if err := v.check(i); err != nil {
		return nil, err
	}

	return v.elements.Get(int(i)), nil
}

// Set returns a new vector with the element at index i replaced by c.
func (v *vector) Set(i int64, c cell.I) (*T, error) {
	if err := v.check(i); err != nil {
		return nil, err
	}

	return &vector{elements: v.elements.Set(int(i), c)}, nil
}

func (v *vector) check(i int64) error {
	if i < 0 || i >= int64(v.Len()) {
		return fmt.Errorf("index %d out of bounds for vector of length %d", i, v.Len())
	}

	return nil
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
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)
}
