// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
	"github.com/michaelmacinnis/zeus/internal/common/type/create"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func charDowncase(_ Context, args []cell.I) (cell.I, error) {
	return mapChar("char-downcase", args, unicode.ToLower)
}

func charEq(_ Context, args []cell.I) (cell.I, error) {
	return chars("char=", args, func(a, b rune) bool { return a == b })
}

func charGt(_ Context, args []cell.I) (cell.I, error) {
	return chars("char>", args, func(a, b rune) bool { return a > b })
}

func charLt(_ Context, args []cell.I) (cell.I, error) {
	return chars("char<", args, func(a, b rune) bool { return a < b })
}

func charToInteger(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("char->integer", args, 1, 1); err != nil {
		return nil, err
	}

	r, err := charArg("char->integer", args[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(r)), nil
}

func charUpcase(_ Context, args []cell.I) (cell.I, error) {
	return mapChar("char-upcase", args, unicode.ToUpper)
}

func integerToChar(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("integer->char", args, 1, 1); err != nil {
		return nil, err
	}

	i, ok := integer.Value(args[0])
	if !ok {
		return nil, fmt.Errorf("integer->char requires an integer argument, got %s", literal.String(args[0]))
	}

	if i < 0 || i > unicode.MaxRune || !utf8.ValidRune(rune(i)) {
		return nil, fmt.Errorf("integer->char: invalid code point %d", i)
	}

	return char.New(rune(i)), nil
}

func charArg(name string, c cell.I) (rune, error) {
	r, ok := char.Value(c)
	if !ok {
		return 0, fmt.Errorf("%s requires character arguments, got %s", name, literal.String(c))
	}

	return r, nil
}

// Each adjacent pair of characters must satisfy holds.
func chars(name string, args []cell.I, holds func(a, b rune) bool) (cell.I, error) {
	if err := validate.Variadic(name, args, 2); err != nil {
		return nil, err
	}

	rs := make([]rune, len(args))

	for i, c := range args {
		r, err := charArg(name, c)
		if err != nil {
			return nil, err
		}

		rs[i] = r
	}

	for i := 1; i < len(rs); i++ {
		if !holds(rs[i-1], rs[i]) {
			return create.Bool(false), nil
		}
	}

	return create.Bool(true), nil
}

func mapChar(name string, args []cell.I, f func(rune) rune) (cell.I, error) {
	if err := validate.Fixed(name, args, 1, 1); err != nil {
		return nil, err
	}

	r, err := charArg(name, args[0])
	if err != nil {
		return nil, err
	}

	return char.New(f(r)), nil
}
