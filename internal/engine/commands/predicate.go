// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
	"github.com/michaelmacinnis/zeus/internal/common/type/create"
	"github.com/michaelmacinnis/zeus/internal/common/type/float"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/num"
	"github.com/michaelmacinnis/zeus/internal/common/type/pair"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/common/type/table"
	"github.com/michaelmacinnis/zeus/internal/common/type/vector"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func equal(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("equal", args, 2, 2); err != nil {
		return nil, err
	}

	return create.Bool(args[0].Equal(args[1])), nil
}

func isCharacter(_ Context, args []cell.I) (cell.I, error) {
	return is("characterp", args, char.Is)
}

// A pair or a non-empty list.
func isCons(_ Context, args []cell.I) (cell.I, error) {
	return is("consp", args, func(c cell.I) bool {
		return pair.Is(c) || (list.Is(c) && !list.IsNull(c))
	})
}

func isFloat(_ Context, args []cell.I) (cell.I, error) {
	return is("floatp", args, float.Is)
}

func isFunction(ctx Context, args []cell.I) (cell.I, error) {
	return is("functionp", args, ctx.IsFunction)
}

func isHashTable(_ Context, args []cell.I) (cell.I, error) {
	return is("hash-table-p", args, table.Is)
}

func isInteger(_ Context, args []cell.I) (cell.I, error) {
	return is("integerp", args, integer.Is)
}

func isKeyword(_ Context, args []cell.I) (cell.I, error) {
	return is("keywordp", args, sym.IsKeyword)
}

func isList(_ Context, args []cell.I) (cell.I, error) {
	return is("listp", args, func(c cell.I) bool {
		return list.Is(c) || pair.Is(c)
	})
}

func isNumber(_ Context, args []cell.I) (cell.I, error) {
	return is("numberp", args, number.Is)
}

func isRational(_ Context, args []cell.I) (cell.I, error) {
	return is("rationalp", args, num.Is)
}

func isString(_ Context, args []cell.I) (cell.I, error) {
	return is("stringp", args, str.Is)
}

func isSymbol(_ Context, args []cell.I) (cell.I, error) {
	return is("symbolp", args, sym.Is)
}

func isVector(_ Context, args []cell.I) (cell.I, error) {
	return is("vectorp", args, vector.Is)
}

// True only for the empty list.
func not(_ Context, args []cell.I) (cell.I, error) {
	return is("not", args, list.IsNull)
}

func is(name string, args []cell.I, test func(cell.I) bool) (cell.I, error) {
	if err := validate.Fixed(name, args, 1, 1); err != nil {
		return nil, err
	}

	return create.Bool(test(args[0])), nil
}
