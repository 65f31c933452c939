// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/type/create"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

// Numbers are equal when their values are equal, whatever their types.
func eq(_ Context, args []cell.I) (cell.I, error) {
	ns, err := numbers("=", args)
	if err != nil {
		return nil, err
	}

	for _, n := range ns[1:] {
		if number.Compare(ns[0], n) != 0 {
			return create.Bool(false), nil
		}
	}

	return create.Bool(true), nil
}

func ge(_ Context, args []cell.I) (cell.I, error) {
	return ordered(">=", args, func(n int) bool { return n >= 0 })
}

func gt(_ Context, args []cell.I) (cell.I, error) {
	return ordered(">", args, func(n int) bool { return n > 0 })
}

func le(_ Context, args []cell.I) (cell.I, error) {
	return ordered("<=", args, func(n int) bool { return n <= 0 })
}

func lt(_ Context, args []cell.I) (cell.I, error) {
	return ordered("<", args, func(n int) bool { return n < 0 })
}

// Every pair of arguments must differ.
func ne(_ Context, args []cell.I) (cell.I, error) {
	ns, err := numbers("/=", args)
	if err != nil {
		return nil, err
	}

	for i, a := range ns {
		for _, b := range ns[i+1:] {
			if number.Compare(a, b) == 0 {
				return create.Bool(false), nil
			}
		}
	}

	return create.Bool(true), nil
}

func numbers(name string, args []cell.I) ([]number.I, error) {
	if err := validate.Variadic(name, args, 2); err != nil {
		return nil, err
	}

	ns := make([]number.I, len(args))

	for i, c := range args {
		n, ok := c.(number.I)
		if !ok {
			return nil, fmt.Errorf("%s requires numeric arguments, got %s", name, literal.String(c))
		}

		ns[i] = n
	}

	return ns, nil
}

func ordered(name string, args []cell.I, holds func(int) bool) (cell.I, error) {
	ns, err := numbers(name, args)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(ns); i++ {
		if !holds(number.Compare(ns[i-1], ns[i])) {
			return create.Bool(false), nil
		}
	}

	return create.Bool(true), nil
}
