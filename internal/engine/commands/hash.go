// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/table"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func hashCount(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-count", args, 1, 1); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-count", args[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(t.Len())), nil
}

// Keys are listed in a stable order: integers, characters, strings,
// symbols and then keywords, each sorted by value.
func hashKeys(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-keys", args, 1, 1); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-keys", args[0])
	if err != nil {
		return nil, err
	}

	keys := t.Keys()

	elements := make([]cell.I, len(keys))
	for i, k := range keys {
		elements[i] = k.Cell()
	}

	return list.New(elements...), nil
}

// Returns the default, if one was passed, when the key is missing.
func hashRef(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-ref", args, 2, 3); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-ref", args[0])
	if err != nil {
		return nil, err
	}

	v, ok, err := t.Get(args[1])
	if err != nil {
		return nil, err
	}

	if ok {
		return v, nil
	}

	if len(args) == 3 {
		return args[2], nil
	}

	return nil, fmt.Errorf("Key not found in hash table: %s", literal.String(args[1])) //nolint:stylecheck
}

func hashRemove(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-remove!", args, 2, 2); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-remove!", args[0])
	if err != nil {
		return nil, err
	}

	r, err := t.Remove(args[1])
	if err != nil {
		return nil, err
	}

	return r, nil
}

func hashSet(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-set!", args, 3, 3); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-set!", args[0])
	if err != nil {
		return nil, err
	}

	r, err := t.Set(args[1], args[2])
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Values are listed in the same order as hash-keys lists their keys.
func hashValues(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("hash-values", args, 1, 1); err != nil {
		return nil, err
	}

	t, err := tableArg("hash-values", args[0])
	if err != nil {
		return nil, err
	}

	keys := t.Keys()

	elements := make([]cell.I, len(keys))
	for i, k := range keys {
		elements[i] = t.Value(k)
	}

	return list.New(elements...), nil
}

func makeHashTable(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("make-hash-table", args, 0, 0); err != nil {
		return nil, err
	}

	return table.New(), nil
}

func tableArg(name string, c cell.I) (*table.T, error) {
	t, ok := c.(*table.T)
	if !ok {
		return nil, fmt.Errorf("%s requires a hash table argument, got %s", name, literal.String(c))
	}

	return t, nil
}
