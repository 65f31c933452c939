// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/pair"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

// The car of the empty list is the empty list.
func car(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("car", args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case list.T:
		if len(v) == 0 {
			return list.Null, nil
		}

		return v[0], nil
	case *pair.T:
		return v.Car(), nil
	}

	return nil, fmt.Errorf("car requires a list argument, got %s", literal.String(args[0]))
}

// The cdr of the empty list is the empty list.
func cdr(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("cdr", args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case list.T:
		return list.Tail(v, 1), nil
	case *pair.T:
		return v.Cdr(), nil
	}

	return nil, fmt.Errorf("cdr requires a list argument, got %s", literal.String(args[0]))
}

// Consing onto a list makes a longer list. Consing onto anything else
// makes a pair.
func cons(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("cons", args, 2, 2); err != nil {
		return nil, err
	}

	if l, ok := args[1].(list.T); ok {
		return append(list.T{args[0]}, l...), nil
	}

	return pair.Cons(args[0], args[1]), nil
}
