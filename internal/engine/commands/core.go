// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
)

// Argument helpers. Each returns an error naming the builtin when the
// argument has the wrong type.

func function(ctx Context, name string, c cell.I) error {
	if !ctx.IsFunction(c) {
		return fmt.Errorf("%s requires a function as first argument", name)
	}

	return nil
}

func index(name string, c cell.I) (int64, error) {
	i, ok := integer.Value(c)
	if !ok || i < 0 {
		return 0, fmt.Errorf("%s index must be a non-negative integer, got %s", name, literal.String(c))
	}

	return i, nil
}

func items(name string, c cell.I) (list.T, error) {
	l, ok := c.(list.T)
	if !ok {
		return nil, fmt.Errorf("%s requires a list argument, got %s", name, literal.String(c))
	}

	return l, nil
}

func text(name string, c cell.I) (string, error) {
	s, ok := str.Value(c)
	if !ok {
		return "", fmt.Errorf("%s requires a string argument, got %s", name, literal.String(c))
	}

	return s, nil
}
