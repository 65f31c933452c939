// Released under an MIT license. See LICENSE.

package table

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
)

// Kind is the kind of value a Key was made from.
type Kind byte

// Key kinds, in the order keys are listed.
const (
	Integer Kind = iota
	Character
	String
	Symbol
	Keyword
)

// Key is the hashable form of a cell that can be used as a hash table key.
type Key struct {
	kind Kind
	i    int64
	s    string
}

// KeyOf returns the Key for c. Only integers, characters, strings,
// interned symbols and keywords can be keys.
func KeyOf(c cell.I) (Key, error) {
	switch v := c.(type) {
	case integer.T:
		return Key{kind: Integer, i: int64(v)}, nil
	case char.T:
		return Key{kind: Character, i: int64(v)}, nil
	case str.T:
		return Key{kind: String, s: string(v)}, nil
	case sym.T:
		return Key{kind: Symbol, s: string(v)}, nil
	case sym.Keyword:
		return Key{kind: Keyword, s: string(v)}, nil
	}

	return Key{}, fmt.Errorf("unhashable key: %s", literal.String(c))
}

// Cell returns the cell that k was made from.
func (k Key) Cell() cell.I {
	switch k.kind {
	case Integer:
		return integer.New(k.i)
	case Character:
		return char.New(rune(k.i))
	case String:
		return str.New(k.s)
	case Symbol:
		return sym.New(k.s)
	}

	return sym.NewKeyword(k.s)
}

// Less orders keys by kind and then by value.
func (k Key) Less(o Key) bool {
	if k.kind != o.kind {
		return k.kind < o.kind
	}

	if k.i != o.i {
		return k.i < o.i
	}

	return k.s < o.s
}

type hasher struct{}

// Hash returns an FNV-1a hash of the key k.
func (hasher) Hash(k Key) uint32 {
	h := fnv.New32a()

	var b [9]byte

	b[0] = byte(k.kind)
	binary.LittleEndian.PutUint64(b[1:], uint64(k.i))

	_, _ = h.Write(b[:])
	_, _ = h.Write([]byte(k.s))

	return h.Sum32()
}

// Equal returns true if a and b are the same key.
func (hasher) Equal(a, b Key) bool {
	return a == b
}
