// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the zeus language.
package parser

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/struct/token"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
	"github.com/michaelmacinnis/zeus/internal/common/type/float"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/num"
	"github.com/michaelmacinnis/zeus/internal/common/type/str"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/common/type/vector"
)

//nolint:stylecheck
var (
	// ErrEndOfInput is returned when the tokens run out inside an expression.
	ErrEndOfInput = errors.New("Unexpected end of input")

	// ErrExtraTokens is returned when tokens remain after a complete expression.
	ErrExtraTokens = errors.New("Extra tokens after expression")
)

// T holds the state of the parser.
type T struct {
	ahead int                      // Lookahead count.
	item  func() (*token.T, error) // Function to call to get another token.
	token *token.T                 // Token lookahead.
}

// New creates a new parser. It reads tokens from item.
func New(item func() (*token.T, error)) *T {
	return &T{item: item}
}

// Next parses the next expression. It returns false, with no error,
// when there are no more tokens.
func (p *T) Next() (cell.I, bool, error) {
	t, err := p.peek()
	if err != nil || t == nil {
		return nil, false, err
	}

	c, err := p.expression()
	if err != nil {
		return nil, false, err
	}

	return c, true, nil
}

// Parse parses exactly one expression. No tokens reads as the empty list.
func (p *T) Parse() (cell.I, error) {
	c, ok, err := p.Next()
	if err != nil {
		return nil, err
	}

	if !ok {
		return list.Null, nil
	}

	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	if t != nil {
		return nil, ErrExtraTokens
	}

	return c, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() (*token.T, error) {
	if p.ahead > 0 {
		return p.token, nil
	}

	t, err := p.item()
	if err != nil {
		return nil, err
	}

	p.token = t
	p.ahead = 1

	return t, nil
}

// T state functions.

// <expression> ::= <atom> | '(' <expression>* ')' | '[' <expression>* ']' | "'" <expression> .
func (p *T) expression() (cell.I, error) {
	t, err := p.peek()
	if err != nil {
		return nil, err
	}

	if t == nil {
		return nil, ErrEndOfInput
	}

	p.consume()

	switch t.Class() {
	case '(':
		elements, err := p.sequence(')', ErrEndOfInput)
		if err != nil {
			return nil, err
		}

		return list.New(elements...), nil
	case '[':
		elements, err := p.sequence(']', fmt.Errorf("%w in vector", ErrEndOfInput))
		if err != nil {
			return nil, err
		}

		return vector.New(elements...), nil
	case '\'':
		c, err := p.expression()
		if err != nil {
			return nil, err
		}

		return list.New(sym.New("quote"), c), nil
	case ')', ']':
		return nil, fmt.Errorf("Unexpected %s", t.Value()) //nolint:stylecheck
	}

	return atom(t)
}

// <sequence> ::= <expression>* close .
func (p *T) sequence(close token.Class, eoi error) ([]cell.I, error) {
	var elements []cell.I

	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}

		if t == nil {
			return nil, eoi
		}

		if t.Is(close) {
			p.consume()

			return elements, nil
		}

		c, err := p.expression()
		if err != nil {
			return nil, err
		}

		elements = append(elements, c)
	}
}

func atom(t *token.T) (cell.I, error) {
	v := t.Value()

	switch t.Class() {
	case token.Character:
		return char.New([]rune(v)[0]), nil
	case token.Float:
		return float.Parse(v)
	case token.Integer:
		return integer.Parse(v)
	case token.Keyword:
		return sym.NewKeyword(v), nil
	case token.Rational:
		r, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, errors.New("Invalid rational number") //nolint:stylecheck
		}

		return num.Rat(r), nil
	case token.String:
		return str.New(v), nil
	case token.Symbol:
		return sym.New(v), nil
	}

	return nil, fmt.Errorf("unexpected token %s", t)
}
