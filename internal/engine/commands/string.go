// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
	"github.com/michaelmacinnis/zeus/internal/common/type/create"
	"github.com/michaelmacinnis/zeus/internal/common/type/float"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

// Numbers, strings and characters are passed to fmt as Go values.
// Anything else is passed as its literal representation.
func format(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Variadic("format", args, 1); err != nil {
		return nil, err
	}

	f, err := text("format", args[0])
	if err != nil {
		return nil, err
	}

	argv := make([]interface{}, len(args)-1)

	for i, c := range args[1:] {
		switch v := c.(type) {
		case integer.T:
			argv[i] = int64(v)
		case float.T:
			argv[i] = float64(v)
		case str.T:
			argv[i] = string(v)
		case char.T:
			argv[i] = rune(v)
		default:
			argv[i] = literal.String(c)
		}
	}

	return str.New(fmt.Sprintf(f, argv...)), nil
}

// The pattern uses shell file name syntax and must match all of the string.
func match(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string-match", args, 2, 2); err != nil {
		return nil, err
	}

	v, err := strs("string-match", args)
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(v[0], v[1])
	if err != nil {
		return nil, fmt.Errorf("string-match: %w", err)
	}

	return create.Bool(ok), nil
}

func numberToString(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("number->string", args, 1, 1); err != nil {
		return nil, err
	}

	if !number.Is(args[0]) {
		return nil, fmt.Errorf("number->string requires a numeric argument, got %s", literal.String(args[0]))
	}

	return str.New(literal.String(args[0])), nil
}

func stringAppend(_ Context, args []cell.I) (cell.I, error) {
	v, err := strs("string-append", args)
	if err != nil {
		return nil, err
	}

	return str.New(strings.Join(v, "")), nil
}

func stringDowncase(_ Context, args []cell.I) (cell.I, error) {
	return mapString("string-downcase", args, strings.ToLower)
}

// (string-join list separator)
func stringJoin(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string-join", args, 2, 2); err != nil {
		return nil, err
	}

	l, err := items("string-join", args[0])
	if err != nil {
		return nil, err
	}

	sep, err := text("string-join", args[1])
	if err != nil {
		return nil, err
	}

	v, err := strs("string-join", l)
	if err != nil {
		return nil, err
	}

	return str.New(strings.Join(v, sep)), nil
}

func stringLength(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string-length", args, 1, 1); err != nil {
		return nil, err
	}

	s, err := text("string-length", args[0])
	if err != nil {
		return nil, err
	}

	return integer.New(int64(len([]rune(s)))), nil
}

// The 4th argument, if passed, limits the number of replacements.
func stringReplace(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string-replace", args, 3, 4); err != nil {
		return nil, err
	}

	v, err := strs("string-replace", args[:3])
	if err != nil {
		return nil, err
	}

	n := -1

	if len(args) == 4 {
		i, ok := integer.Value(args[3])
		if !ok {
			return nil, fmt.Errorf("string-replace count must be an integer, got %s", literal.String(args[3]))
		}

		n = int(i)
	}

	return str.New(strings.Replace(v[0], v[1], v[2], n)), nil
}

func stringSplit(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string-split", args, 2, 2); err != nil {
		return nil, err
	}

	v, err := strs("string-split", args)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(v[0], v[1])

	elements := make([]cell.I, len(parts))
	for i, p := range parts {
		elements[i] = str.New(p)
	}

	return list.New(elements...), nil
}

func stringTrimPrefix(_ Context, args []cell.I) (cell.I, error) {
	return trim("string-trim-prefix", args, strings.TrimPrefix)
}

func stringTrimSuffix(_ Context, args []cell.I) (cell.I, error) {
	return trim("string-trim-suffix", args, strings.TrimSuffix)
}

func stringUpcase(_ Context, args []cell.I) (cell.I, error) {
	return mapString("string-upcase", args, strings.ToUpper)
}

// Indices count characters. The end is clamped to the length of the
// string and a negative end counts back from the end of the string.
func substring(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("substring", args, 2, 3); err != nil {
		return nil, err
	}

	s, err := text("substring", args[0])
	if err != nil {
		return nil, err
	}

	rs := []rune(s)
	length := int64(len(rs))

	start, ok := integer.Value(args[1])
	if !ok {
		return nil, fmt.Errorf("substring start must be an integer, got %s", literal.String(args[1]))
	}

	if start < 0 {
		return nil, fmt.Errorf("substring starts before first character: %d", start)
	} else if start > length {
		start = length
	}

	end := length

	if len(args) == 3 {
		end, ok = integer.Value(args[2])
		if !ok {
			return nil, fmt.Errorf("substring end must be an integer, got %s", literal.String(args[2]))
		}

		if end > length {
			end = length
		} else if end < 0 {
			end = length + end
		}
	}

	if end < start {
		return nil, fmt.Errorf("substring ends before it starts: %d < %d", end, start)
	}

	return str.New(string(rs[start:end])), nil
}

func mapString(name string, args []cell.I, f func(string) string) (cell.I, error) {
	if err := validate.Fixed(name, args, 1, 1); err != nil {
		return nil, err
	}

	s, err := text(name, args[0])
	if err != nil {
		return nil, err
	}

	return str.New(f(s)), nil
}

func strs(name string, args []cell.I) ([]string, error) {
	v := make([]string, len(args))

	for i, c := range args {
		s, err := text(name, c)
		if err != nil {
			return nil, err
		}

		v[i] = s
	}

	return v, nil
}

func trim(name string, args []cell.I, f func(s, affix string) string) (cell.I, error) {
	if err := validate.Fixed(name, args, 2, 2); err != nil {
		return nil, err
	}

	v, err := strs(name, args)
	if err != nil {
		return nil, err
	}

	return str.New(f(v[0], v[1])), nil
}
