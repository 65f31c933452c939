// Released under an MIT license. See LICENSE.

package sym

import (
	"strconv"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

// Uninterned is a symbol with a unique identity. Two uninterned
// symbols are equal only if they are the same symbol, even when their
// names match.
type Uninterned struct {
	id   uint64
	name string
}

// NewUninterned creates an uninterned symbol with the given name and identity.
func NewUninterned(name string, id uint64) *Uninterned {
	return &Uninterned{id: id, name: name}
}

// Equal returns true if c is the same uninterned symbol.
func (u *Uninterned) Equal(c cell.I) bool {
	o, ok := c.(*Uninterned)

	return ok && u.id == o.id
}

// ID returns the identity of the uninterned symbol u.
func (u *Uninterned) ID() uint64 {
	return u.id
}

// Key returns the private name under which u can be bound.
// It cannot collide with the name of any interned symbol.
func (u *Uninterned) Key() string {
	return "#:" + u.name + "#" + strconv.FormatUint(u.id, 10)
}

// Literal returns the literal representation of the uninterned symbol u.
func (u *Uninterned) Literal() string {
	return "#:" + u.name
}

// Name returns the type name for the uninterned symbol u.
func (u *Uninterned) Name() string {
	return name
}

// String returns the name of the uninterned symbol u.
func (u *Uninterned) String() string {
	return u.name
}

// Text returns the name of the uninterned symbol u.
func (u *Uninterned) Text() string {
	return u.name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implementsUninterned() { //nolint:deadcode,unused
	var t Uninterned

	_ = cell.I(&t)
	_ = literal.I(&t)
	_ = common.Stringer(&t)
}
