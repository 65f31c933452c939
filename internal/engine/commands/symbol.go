// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

// (gensym) names the symbol G<n>, (gensym "prefix") names it prefix<n>
// and (gensym n) first resets the counter to n.
func gensym(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("gensym", args, 0, 1); err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return ctx.Env().Gensym("G", nil), nil
	}

	switch v := args[0].(type) {
	case str.T:
		return ctx.Env().Gensym(string(v), nil), nil
	case integer.T:
		n := int64(v)

		return ctx.Env().Gensym("G", &n), nil
	}

	return nil, fmt.Errorf("gensym argument must be a string or integer, got %s", literal.String(args[0]))
}

func get(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("get", args, 2, 2); err != nil {
		return nil, err
	}

	s, p, err := property("get", args[0], args[1])
	if err != nil {
		return nil, err
	}

	return ctx.Env().Property(s, p), nil
}

func put(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("put", args, 3, 3); err != nil {
		return nil, err
	}

	s, p, err := property("put", args[0], args[1])
	if err != nil {
		return nil, err
	}

	ctx.Env().SetProperty(s, p, args[2])

	return args[2], nil
}

func stringToSymbol(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("string->symbol", args, 1, 1); err != nil {
		return nil, err
	}

	s, err := text("string->symbol", args[0])
	if err != nil {
		return nil, err
	}

	return sym.New(s), nil
}

func symbolName(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("symbol-name", args, 1, 1); err != nil {
		return nil, err
	}

	s, ok := sym.Text(args[0])
	if !ok {
		return nil, fmt.Errorf("symbol-name requires a symbol argument, got %s", literal.String(args[0]))
	}

	return str.New(s), nil
}

func symbolPlist(ctx Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("symbol-plist", args, 1, 1); err != nil {
		return nil, err
	}

	s, err := symbolKey("symbol-plist", args[0])
	if err != nil {
		return nil, err
	}

	return ctx.Env().Plist(s), nil
}

// Properties are stored by the symbol's key and the property's name.
func property(name string, s, p cell.I) (string, string, error) {
	k, err := symbolKey(name, s)
	if err != nil {
		return "", "", err
	}

	n, ok := sym.Text(p)
	if !ok {
		return "", "", fmt.Errorf("%s requires a symbol as the property name, got %s", name, literal.String(p))
	}

	return k, n, nil
}

func symbolKey(name string, c cell.I) (string, error) {
	switch v := c.(type) {
	case sym.T:
		return string(v), nil
	case sym.Keyword:
		return v.Literal(), nil
	case *sym.Uninterned:
		return v.Key(), nil
	}

	return "", fmt.Errorf("%s requires a symbol argument, got %s", name, literal.String(c))
}
