// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/zeus/internal/common"
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
)

// Strings are written without quotes. The value is the last argument.
func display(ctx Context, args []cell.I) (cell.I, error) {
	return write(ctx.Output(), "print", args, "")
}

func displayLines(ctx Context, args []cell.I) (cell.I, error) {
	return write(ctx.Output(), "println", args, "\n")
}

func write(w io.Writer, name string, args []cell.I, end string) (cell.I, error) {
	for _, c := range args {
		if _, err := io.WriteString(w, common.String(c)+end); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if len(args) == 0 {
		if _, err := io.WriteString(w, end); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return list.Null, nil
	}

	return args[len(args)-1], nil
}
