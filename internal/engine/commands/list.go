// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/type/table"
	"github.com/michaelmacinnis/zeus/internal/common/type/vector"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

func appendLists(_ Context, args []cell.I) (cell.I, error) {
	lists := make([]list.T, len(args))

	for i, c := range args {
		l, err := items("append", c)
		if err != nil {
			return nil, err
		}

		lists[i] = l
	}

	return list.Append(lists...), nil
}

func length(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("length", args, 1, 1); err != nil {
		return nil, err
	}

	switch v := args[0].(type) {
	case list.T:
		return integer.New(int64(len(v))), nil
	case str.T:
		return integer.New(int64(utf8.RuneCountInString(string(v)))), nil
	case *vector.T:
		return integer.New(int64(v.Len())), nil
	case *table.T:
		return integer.New(int64(v.Len())), nil
	}

	return nil, fmt.Errorf("length requires a sequence argument, got %s", literal.String(args[0]))
}

func makeList(_ Context, args []cell.I) (cell.I, error) {
	return list.New(args...), nil
}

// Returns the tail of the list starting at the first element equal to
// the item, or the empty list.
func member(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("member", args, 2, 2); err != nil {
		return nil, err
	}

	l, err := items("member", args[1])
	if err != nil {
		return nil, err
	}

	for i, e := range l {
		if args[0].Equal(e) {
			return list.Tail(l, i), nil
		}
	}

	return list.Null, nil
}

func nth(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("nth", args, 2, 2); err != nil {
		return nil, err
	}

	i, err := index("nth", args[0])
	if err != nil {
		return nil, err
	}

	l, err := items("nth", args[1])
	if err != nil {
		return nil, err
	}

	if i >= int64(len(l)) {
		return nil, fmt.Errorf("nth index out of bounds: %d", i)
	}

	return l[i], nil
}

func nthcdr(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("nthcdr", args, 2, 2); err != nil {
		return nil, err
	}

	i, err := index("nthcdr", args[0])
	if err != nil {
		return nil, err
	}

	l, err := items("nthcdr", args[1])
	if err != nil {
		return nil, err
	}

	if i >= int64(len(l)) {
		return list.Null, nil
	}

	return list.Tail(l, int(i)), nil
}

func reverse(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("reverse", args, 1, 1); err != nil {
		return nil, err
	}

	l, err := items("reverse", args[0])
	if err != nil {
		return nil, err
	}

	return list.Reverse(l), nil
}
