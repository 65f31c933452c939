// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/truth"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func apply(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("apply", args, 2, 2); err != nil {
		return nil, err
	}

	if err := function(ctx, "apply", args[0]); err != nil {
		return nil, err
	}

	l, err := items("apply", args[1])
	if err != nil {
		return nil, err
	}

	return ctx.Apply(args[0], l)
}

func filter(ctx Context, args []cell.I) (cell.I, error) {
	return sift(ctx, "filter", args, true)
}

func funcall(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Variadic("funcall", args, 1); err != nil {
		return nil, err
	}

	if err := function(ctx, "funcall", args[0]); err != nil {
		return nil, err
	}

	return ctx.Apply(args[0], args[1:])
}

// The function is applied to the i-th element of every list for as many
// elements as the shortest list has.
func mapcar(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Variadic("mapcar", args, 2); err != nil {
		return nil, err
	}

	if err := function(ctx, "mapcar", args[0]); err != nil {
		return nil, err
	}

	lists := make([]list.T, len(args)-1)
	shortest := -1

	for i, c := range args[1:] {
		l, err := items("mapcar", c)
		if err != nil {
			return nil, err
		}

		if shortest < 0 || len(l) < shortest {
			shortest = len(l)
		}

		lists[i] = l
	}

	results := make([]cell.I, 0, shortest)

	for i := 0; i < shortest; i++ {
		operands := make([]cell.I, len(lists))
		for j, l := range lists {
			operands[j] = l[i]
		}

		r, err := ctx.Apply(args[0], operands)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return list.New(results...), nil
}

func reduce(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("reduce", args, 2, 3); err != nil {
		return nil, err
	}

	if err := function(ctx, "reduce", args[0]); err != nil {
		return nil, err
	}

	l, err := items("reduce", args[1])
	if err != nil {
		return nil, err
	}

	var acc cell.I

	if len(args) == 3 {
		acc = args[2]
	} else {
		if len(l) == 0 {
			return nil, errors.New("reduce of empty list with no initial value")
		}

		acc, l = l[0], l[1:]
	}

	for _, e := range l {
		acc, err = ctx.Apply(args[0], []cell.I{acc, e})
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func remove(ctx Context, args []cell.I) (cell.I, error) {
	return sift(ctx, "remove", args, false)
}

// The elements for which the predicate's truth equals keep are kept.
func sift(ctx Context, name string, args []cell.I, keep bool) (cell.I, error) {
	if err := validate.Fixed(name, args, 2, 2); err != nil {
		return nil, err
	}

	if err := function(ctx, name, args[0]); err != nil {
		return nil, err
	}

	l, err := items(name, args[1])
	if err != nil {
		return nil, err
	}

	kept := make([]cell.I, 0, len(l))

	for _, e := range l {
		r, err := ctx.Apply(args[0], []cell.I{e})
		if err != nil {
			return nil, err
		}

		if truth.Value(r) == keep {
			kept = append(kept, e)
		}
	}

	return list.New(kept...), nil
}
