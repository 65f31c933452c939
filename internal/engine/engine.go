// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed zeus code.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/engine/commands"
	"github.com/michaelmacinnis/zeus/internal/engine/env"
	"github.com/michaelmacinnis/zeus/internal/reader"
)

// T (engine) evaluates zeus expressions in a single session.
// It is not safe for concurrent use.
type T struct {
	builtins map[string]commands.Function
	env      *env.T
	forms    map[string]form
	log      *slog.Logger
	output   io.Writer
}

type form func(e *T, operands []cell.I) (cell.I, error)

// Option configures an engine.
type Option func(*T)

// Logger sets the logger used to trace evaluation at the debug level.
func Logger(l *slog.Logger) Option {
	return func(e *T) {
		e.log = l
	}
}

// Output sets where print and println write.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.output = w
	}
}

// New creates a new session. Every builtin name is bound to its own
// symbol, t is bound to t and nil is bound to the empty list.
func New(options ...Option) *T {
	e := &T{
		builtins: commands.Functions(),
		env:      env.New(),
		forms:    forms(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		output:   os.Stdout,
	}

	for _, o := range options {
		o(e)
	}

	for name := range e.builtins {
		e.env.Set(name, sym.New(name))
	}

	e.env.Set("t", sym.True)
	e.env.Set("nil", list.Null)

	return e
}

// Apply applies the function fn to already evaluated args. A function is
// either a symbol naming a builtin or a lambda expression.
func (e *T) Apply(fn cell.I, args []cell.I) (cell.I, error) {
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("apply", "function", literal.String(fn), "arguments", len(args))
	}

	switch f := fn.(type) {
	case sym.T:
		if b, ok := e.builtins[string(f)]; ok {
			return b(e, args)
		}
	case list.T:
		if isLambda(f) {
			return e.call(f, args)
		}
	}

	return nil, fmt.Errorf("Cannot apply: %s", literal.String(fn)) //nolint:stylecheck
}

// Env returns the session's environment.
func (e *T) Env() *env.T {
	return e.env
}

// Evaluate evaluates the expression c. A symbol evaluates to its binding.
// An uninterned symbol, like those gensym makes, is bound and looked up
// under a key that includes its identity. That key can never be spelled
// by an interned symbol, so an uninterned symbol never sees or shadows
// an interned one with the same name.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	switch v := c.(type) {
	case sym.T:
		return e.env.Get(string(v))
	case *sym.Uninterned:
		return e.env.Get(v.Key())
	case list.T:
		if len(v) == 0 {
			return list.Null, nil
		}

		if s, ok := v[0].(sym.T); ok {
			if f, ok := e.forms[string(s)]; ok {
				if e.log.Enabled(context.Background(), slog.LevelDebug) {
					e.log.Debug("form", "name", string(s), "operands", len(v)-1)
				}

				return f(e, v[1:])
			}
		}

		return e.application(v)
	}

	// Everything else, keywords included, evaluates to itself.
	return c, nil
}

// EvaluateText reads exactly one expression from source and evaluates it.
func (e *T) EvaluateText(source string) (cell.I, error) {
	c, err := reader.Read(source)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(c)
}

// IsFunction returns true if c can be applied.
func (e *T) IsFunction(c cell.I) bool {
	switch f := c.(type) {
	case sym.T:
		_, ok := e.builtins[string(f)]

		return ok
	case list.T:
		return isLambda(f)
	}

	return false
}

// Load evaluates every expression in source, in order, and returns the
// value of the last one. Evaluation stops at the first error.
func (e *T) Load(source string) (cell.I, error) {
	cs, err := reader.ReadAll(source)
	if err != nil {
		return nil, err
	}

	var r cell.I = list.Null

	for _, c := range cs {
		r, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Output returns the writer used by print and println.
func (e *T) Output() io.Writer {
	return e.output
}

func (e *T) application(v list.T) (cell.I, error) {
	fn, err := e.Evaluate(v[0])
	if err != nil {
		return nil, err
	}

	args := make([]cell.I, len(v)-1)

	for i, c := range v[1:] {
		args[i], err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return e.Apply(fn, args)
}

// Parameters are bound in a new scope that is removed however the body exits.
func (e *T) call(f list.T, args []cell.I) (cell.I, error) {
	names, err := parameters(f[1])
	if err != nil {
		return nil, err
	}

	if len(names) != len(args) {
		return nil, fmt.Errorf("Lambda expects %d arguments, got %d", len(names), len(args)) //nolint:stylecheck
	}

	e.env.Push()
	defer e.env.Pop()

	for i, name := range names {
		e.env.Set(name, args[i])
	}

	return e.Evaluate(f[2])
}

// sequence evaluates each expression in body and returns the value of
// the last. An empty body evaluates to the empty list.
func (e *T) sequence(body []cell.I) (cell.I, error) {
	var (
		r   cell.I = list.Null
		err error
	)

	for _, c := range body {
		r, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// A lambda expression is a three element list headed by the symbol lambda.
func isLambda(l list.T) bool {
	if len(l) != 3 { //nolint:gomnd
		return false
	}

	s, ok := l[0].(sym.T)

	return ok && s == "lambda"
}

// Only interned and uninterned symbols can be bound.
func name(c cell.I, keyword string) (string, bool, error) {
	switch v := c.(type) {
	case sym.T:
		return string(v), true, nil
	case *sym.Uninterned:
		return v.Key(), true, nil
	case sym.Keyword:
		return "", false, errors.New(keyword)
	}

	return "", false, nil
}

func parameters(c cell.I) ([]string, error) {
	l, ok := c.(list.T)
	if !ok {
		return nil, errors.New("Lambda parameters must be a list") //nolint:stylecheck
	}

	names := make([]string, len(l))

	for i, p := range l {
		n, ok, err := name(p, "Lambda parameter cannot be a keyword")
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, errors.New("Lambda parameters must be symbols") //nolint:stylecheck
		}

		names[i] = n
	}

	return names, nil
}
