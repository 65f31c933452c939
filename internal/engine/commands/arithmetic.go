// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/number"
	"github.com/michaelmacinnis/zeus/internal/common/interface/rational"
	"github.com/michaelmacinnis/zeus/internal/common/type/float"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
)

// ErrDivisionByZero is returned when an exact zero is used as a divisor.
var ErrDivisionByZero = errors.New("Division by zero") //nolint:stylecheck

// An operator folds its operands left to right. When every operand is an
// integer the fold is exact and an integral result stays an integer.
// Otherwise the fold is done with float64 values.
type operator struct {
	name    string
	divides bool
	exact   func(z, x, y *big.Rat) *big.Rat
	inexact func(x, y float64) float64
}

//nolint:gochecknoglobals
var (
	addition = &operator{
		name:    "+",
		exact:   (*big.Rat).Add,
		inexact: func(x, y float64) float64 { return x + y },
	}
	division = &operator{
		name:    "/",
		divides: true,
		exact:   (*big.Rat).Quo,
		inexact: func(x, y float64) float64 { return x / y },
	}
	multiplication = &operator{
		name:    "*",
		exact:   (*big.Rat).Mul,
		inexact: func(x, y float64) float64 { return x * y },
	}
	subtraction = &operator{
		name:    "-",
		exact:   (*big.Rat).Sub,
		inexact: func(x, y float64) float64 { return x - y },
	}
)

func add(_ Context, args []cell.I) (cell.I, error) {
	return addition.fold(integer.New(0), args)
}

func div(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Variadic("/", args, 1); err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return division.fold(integer.New(1), args)
	}

	return division.fold(args[0], args[1:])
}

func mod(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Fixed("mod", args, 2, 2); err != nil {
		return nil, err
	}

	dividend, ok := integer.Value(args[0])
	if !ok {
		return nil, fmt.Errorf("mod requires integer arguments, got %s", literal.String(args[0]))
	}

	divisor, ok := integer.Value(args[1])
	if !ok {
		return nil, fmt.Errorf("mod requires integer arguments, got %s", literal.String(args[1]))
	}

	if divisor == 0 {
		return nil, ErrDivisionByZero
	}

	// The result takes the sign of the divisor.
	remainder := dividend % divisor
	if remainder != 0 && (remainder < 0) != (divisor < 0) {
		remainder += divisor
	}

	return integer.New(remainder), nil
}

func mul(_ Context, args []cell.I) (cell.I, error) {
	return multiplication.fold(integer.New(1), args)
}

func sub(_ Context, args []cell.I) (cell.I, error) {
	if err := validate.Variadic("-", args, 1); err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return subtraction.fold(integer.New(0), args)
	}

	return subtraction.fold(args[0], args[1:])
}

func (o *operator) fold(first cell.I, rest []cell.I) (cell.I, error) {
	operands := make([]number.I, 0, len(rest)+1)
	exact := true

	for _, c := range append([]cell.I{first}, rest...) {
		n, ok := c.(number.I)
		if !ok {
			return nil, fmt.Errorf("%s requires numeric arguments, got %s", o.name, literal.String(c))
		}

		if !integer.Is(c) {
			exact = false
		}

		operands = append(operands, n)
	}

	if o.divides {
		for _, n := range operands[1:] {
			if r, ok := rational.Number(n); ok && r.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
		}
	}

	if !exact {
		acc := operands[0].Float()
		for _, n := range operands[1:] {
			acc = o.inexact(acc, n.Float())
		}

		return float.New(acc), nil
	}

	acc, _ := rational.Number(operands[0])
	acc = new(big.Rat).Set(acc)

	for _, n := range operands[1:] {
		r, _ := rational.Number(n)
		acc = o.exact(acc, acc, r)
	}

	return fromRat(acc), nil
}

func fromRat(r *big.Rat) cell.I {
	if r.IsInt() && r.Num().IsInt64() {
		return integer.New(r.Num().Int64())
	}

	f, _ := r.Float64()

	return float.New(f)
}
