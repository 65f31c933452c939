// Released under an MIT license. See LICENSE.

// Package table provides zeus's hash table type. Tables are persistent:
// setting or removing a key returns a new table and leaves the original intact.
package table

import (
	"sort"
	"strconv"

	"github.com/benbjohnson/immutable"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

const name = "hash-table"

// T (table) is a persistent map from keys to cells.
type T struct {
	entries *immutable.Map[Key, cell.I]
}

type table = T

// New creates a new, empty table.
func New() *T {
	return &table{entries: immutable.NewMap[Key, cell.I](hasher{})}
}

// Equal returns true if c is a table holding the same keys mapped to equal values.
func (t *table) Equal(c cell.I) bool {
	o, ok := c.(*table)
	if !ok || t.Len() != o.Len() {
		return false
	}

	for itr := t.entries.Iterator(); !itr.Done(); {
		k, v, _ := itr.Next()

		ov, found := o.entries.Get(k)
		if !found || !v.Equal(ov) {
			return false
		}
	}

	return true
}

// Get returns the value stored under the cell k.
func (t *table) Get(k cell.I) (cell.I, bool, error) {
	key, err := KeyOf(k)
	if err != nil {
		return nil, false, err
	}

	v, ok := t.entries.Get(key)

	return v, ok, nil
}

// Keys returns the keys in t in a stable order.
func (t *table) Keys() []Key {
	keys := make([]Key, 0, t.Len())

	for itr := t.entries.Iterator(); !itr.Done(); {
		k, _, _ := itr.Next()
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})

	return keys
}

// Len returns the number of entries in the table t.
func (t *table) Len() int {
	return t.entries.Len()
}

// Literal returns the literal representation of the table t.
func (t *table) Literal() string {
	return "#<" + name + ":" + strconv.Itoa(t.Len()) + ">"
}

// Name returns the name for a table type.
func (t *table) Name() string {
	return name
}

// Remove returns a new table without the cell k as a key.
func (t *table) Remove(k cell.I) (*T, error) {
	key, err := KeyOf(k)
	if err != nil {
		return nil, err
	}

	return &table{entries: t.entries.Delete(key)}, nil
}

// Set returns a new table with the cell k mapped to v.
func (t *table) Set(k, v cell.I) (*T, error) {
	key, err := KeyOf(k)
	if err != nil {
		return nil, err
	}

	return &table{entries: t.entries.Set(key, v)}, nil
}

// Value returns the value stored under key.
func (t *table) Value(key Key) cell.I {
	v, _ := t.entries.Get(key)

	return v
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
	var t table

	// The table type is a cell.
	_ = cell.I(&t)

	// The table type has a literal representation.
	_ = literal.I(&t)
}
