// Released under an MIT license. See LICENSE.

// Package reader turns zeus source text into expressions.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/struct/token"
	"github.com/michaelmacinnis/zeus/internal/reader/lexer"
	"github.com/michaelmacinnis/zeus/internal/reader/parser"
)

// Complete returns true if source holds nothing but complete expressions.
// Text that stops inside a list, a vector or a string is incomplete.
// Text with any other error is complete: reading it more will not help.
func Complete(source string) bool {
	_, err := ReadAll(source)

	return !errors.Is(err, parser.ErrEndOfInput) &&
		!errors.Is(err, lexer.ErrUnterminated)
}

// Read reads exactly one expression from source. Empty source reads as
// the empty list.
func Read(source string) (cell.I, error) {
	return parser.New(scanner(source)).Parse()
}

// ReadAll reads every expression in source.
func ReadAll(source string) ([]cell.I, error) {
	p := parser.New(scanner(source))

	var cs []cell.I

	for {
		c, ok, err := p.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return cs, nil
		}

		cs = append(cs, c)
	}
}

func scanner(source string) func() (*token.T, error) {
	l := lexer.New("zeus")

	l.Scan(source)

	return l.Token
}
