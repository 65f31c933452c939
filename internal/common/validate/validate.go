// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to zeus functions.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
)

// Fixed returns an error if the number of args is not between min and max, inclusive.
func Fixed(name string, args []cell.I, min, max int) error {
	n := len(args)
	if n >= min && n <= max {
		return nil
	}

	var s string

	switch {
	case min == max:
		s = Count(min, "argument", "s")
	case n < min:
		s = "at least " + Count(min, "argument", "s")
	default:
		s = "at most " + Count(max, "argument", "s")
	}

	return fmt.Errorf("%s expects %s, passed %d", name, s, n)
}

// Variadic returns an error if there are fewer than min args.
func Variadic(name string, args []cell.I, min int) error {
	n := len(args)
	if n >= min {
		return nil
	}

	s := Count(min, "argument", "s")

	return fmt.Errorf("%s expects at least %s, passed %d", name, s, n)
}

// Count returns n followed by label, pluralised with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
