// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/vector"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func listToVector(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("list->vector", args, 1, 1); err != nil {
		return nil, err
	}

	l, err := items("list->vector", args[0])
	if err != nil {
		return nil, err
	}

	return vector.New(l...), nil
}

func makeVector(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("make-vector", args, 1, 2); err != nil {
		return nil, err
	}

	n, err := index("make-vector", args[0])
	if err != nil {
		return nil, err
	}

	fill := list.Null
	if len(args) == 2 {
		fill = args[1]
	}

	v, err := vector.Make(n, fill)
	if err != nil {
		return nil, fmt.Errorf("make-vector: %w", err)
	}

	return v, nil
}

func makeVectorOf(_ Context, args []cell.I) (cell.I, error) {
	return vector.New(args...), nil
}

func vectorLength(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("vector-length", args, 1, 1); err != nil {
		return nil, err
	}

	v, err := vectorArg("vector-length", args[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(v.Len())), nil
}

func vectorRef(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("vector-ref", args, 2, 2); err != nil {
		return nil, err
	}

	v, err := vectorArg("vector-ref", args[0])
	if err != nil {
		return nil, err
	}

	i, ok := integer.Value(args[1])
	if !ok {
		return nil, fmt.Errorf("vector-ref index must be an integer, got %s", literal.String(args[1]))
	}

	return v.Ref(i)
}

// The vector is not modified. The result is a new vector.
func vectorSet(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("vector-set!", args, 3, 3); err != nil {
		return nil, err
	}

	v, err := vectorArg("vector-set!", args[0])
	if err != nil {
		return nil, err
	}

	i, ok := integer.Value(args[1])
	if !ok {
		return nil, fmt.Errorf("vector-set! index must be an integer, got %s", literal.String(args[1]))
	}

	w, err := v.Set(i, args[2])
	if err != nil {
		return nil, err
	}

	return w, nil
}

func vectorToList(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("vector->list", args, 1, 1); err != nil {
		return nil, err
	}

	v, err := vectorArg("vector->list", args[0])
	if err != nil {
		return nil, err
	}

	return list.New(v.Elements()...), nil
}

func vectorArg(name string, c cell.I) (*vector.T, error) {
	v, ok := c.(*vector.T)
	if !ok {
		return nil, fmt.Errorf("%s requires a vector argument, got %s", name, literal.String(c))
	}

	return v, nil
}
