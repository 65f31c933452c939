// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/interface/truth"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/common/validate"
	"github.com/michaelmacinnis/zeus/internal/engine/signal"
)

// Special forms receive their operands unevaluated.
func forms() map[string]form {
	return map[string]form{
		"and":            (*T).and,
		"begin":          (*T).progn,
		"block":          (*T).block,
		"case":           (*T).caseForm,
		"catch":          (*T).catch,
		"cond":           (*T).cond,
		"define":         (*T).define,
		"defun":          (*T).defun,
		"do":             (*T).do,
		"go":             (*T).goForm,
		"if":             (*T).ifForm,
		"lambda":         (*T).lambdaForm,
		"let":            (*T).let,
		"let*":           (*T).letStar,
		"letrec":         (*T).letrec,
		"loop":           (*T).loop,
		"or":             (*T).or,
		"progn":          (*T).progn,
		"quote":          (*T).quote,
		"return-from":    (*T).returnFrom,
		"tagbody":        (*T).tagbody,
		"throw":          (*T).throw,
		"unless":         (*T).unless,
		"unwind-protect": (*T).unwindProtect,
		"when":           (*T).when,
	}
}

// Forms.

// (and) is t. Otherwise the value is the first false operand or the last operand.
func (e *T) and(operands []cell.I) (cell.I, error) {
	var r cell.I = sym.True

	for _, c := range operands {
		v, err := e.Evaluate(c)
		if err != nil {
			return nil, err
		}

		if !truth.Value(v) {
			return v, nil
		}

		r = v
	}

	return r, nil
}

func (e *T) block(operands []cell.I) (cell.I, error) {
	if err := arity("block", operands, 1, -1); err != nil {
		return nil, err
	}

	label, err := symbolName("block", operands[0])
	if err != nil {
		return nil, err
	}

	r, err := e.sequence(operands[1:])
	if err != nil {
		var rf *signal.ReturnFrom
		if errors.As(err, &rf) && rf.Block == label {
			return rf.Value, nil
		}

		return nil, err
	}

	return r, nil
}

// Clause data are not evaluated. A clause whose data is a list matches
// any element of the list. The else and otherwise clauses match anything.
func (e *T) caseForm(operands []cell.I) (cell.I, error) {
	if err := arity("case", operands, 1, -1); err != nil {
		return nil, err
	}

	key, err := e.Evaluate(operands[0])
	if err != nil {
		return nil, err
	}

	for _, c := range operands[1:] {
		clause, err := clauseOf("case", c)
		if err != nil {
			return nil, err
		}

		if matches(clause[0], key, "else", "otherwise") {
			return e.sequence(clause[1:])
		}
	}

	return list.Null, nil
}

func (e *T) catch(operands []cell.I) (cell.I, error) {
	if err := arity("catch", operands, 1, -1); err != nil {
		return nil, err
	}

	tag, err := e.Evaluate(operands[0])
	if err != nil {
		return nil, err
	}

	r, err := e.sequence(operands[1:])
	if err != nil {
		var th *signal.Throw
		if errors.As(err, &th) && th.Tag.Equal(tag) {
			return th.Value, nil
		}

		return nil, err
	}

	return r, nil
}

// A clause with only a test has the test's value as its value.
func (e *T) cond(operands []cell.I) (cell.I, error) {
	for _, c := range operands {
		clause, err := clauseOf("cond", c)
		if err != nil {
			return nil, err
		}

		if s, ok := clause[0].(sym.T); ok && s == "else" {
			if len(clause) == 1 {
				return sym.True, nil
			}

			return e.sequence(clause[1:])
		}

		v, err := e.Evaluate(clause[0])
		if err != nil {
			return nil, err
		}

		if truth.Value(v) {
			if len(clause) == 1 {
				return v, nil
			}

			return e.sequence(clause[1:])
		}
	}

	return list.Null, nil
}

func (e *T) define(operands []cell.I) (cell.I, error) {
	if len(operands) != 2 { //nolint:gomnd
		return nil, errors.New("define requires exactly 2 arguments")
	}

	n, ok, err := name(operands[0], "Cannot define a keyword")
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.New("First argument to define must be a symbol") //nolint:stylecheck
	}

	v, err := e.Evaluate(operands[1])
	if err != nil {
		return nil, err
	}

	e.env.Set(n, v)

	return v, nil
}

// A body of more than one expression is wrapped in progn.
func (e *T) defun(operands []cell.I) (cell.I, error) {
	if err := arity("defun", operands, 3, -1); err != nil {
		return nil, err
	}

	n, ok, err := name(operands[0], "Cannot defun a keyword")
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.New("First argument to defun must be a symbol") //nolint:stylecheck
	}

	if _, err := parameters(operands[1]); err != nil {
		return nil, err
	}

	body := operands[2]
	if len(operands) > 3 { //nolint:gomnd
		body = append(list.T{sym.New("progn")}, operands[2:]...)
	}

	e.env.Set(n, list.T{sym.New("lambda"), operands[1], body})

	return operands[0], nil
}

func (e *T) do(operands []cell.I) (cell.I, error) {
	return e.iterate("do", operands)
}

func (e *T) goForm(operands []cell.I) (cell.I, error) {
	if err := arity("go", operands, 1, 1); err != nil {
		return nil, err
	}

	label, err := symbolName("go", operands[0])
	if err != nil {
		return nil, err
	}

	return nil, &signal.Go{Label: label}
}

// Without an else branch a false test gives the empty list.
func (e *T) ifForm(operands []cell.I) (cell.I, error) {
	if err := arity("if", operands, 2, 3); err != nil {
		return nil, err
	}

	v, err := e.Evaluate(operands[0])
	if err != nil {
		return nil, err
	}

	if truth.Value(v) {
		return e.Evaluate(operands[1])
	}

	if len(operands) == 3 { //nolint:gomnd
		return e.Evaluate(operands[2])
	}

	return list.Null, nil
}

// A lambda evaluates to itself once its parameters have been checked.
func (e *T) lambdaForm(operands []cell.I) (cell.I, error) {
	if err := arity("lambda", operands, 2, 2); err != nil {
		return nil, err
	}

	if _, err := parameters(operands[0]); err != nil {
		return nil, err
	}

	return list.T{sym.New("lambda"), operands[0], operands[1]}, nil
}

// Every initializer is evaluated in the enclosing scope before any
// variable is bound.
func (e *T) let(operands []cell.I) (cell.I, error) {
	if err := arity("let", operands, 1, -1); err != nil {
		return nil, err
	}

	bs, err := bindings("let", operands[0])
	if err != nil {
		return nil, err
	}

	values := make([]cell.I, len(bs))

	for i, b := range bs {
		values[i], err = e.Evaluate(b.init)
		if err != nil {
			return nil, err
		}
	}

	e.env.Push()
	defer e.env.Pop()

	for i, b := range bs {
		e.env.Set(b.name, values[i])
	}

	return e.sequence(operands[1:])
}

// Each initializer sees the variables bound before it.
func (e *T) letStar(operands []cell.I) (cell.I, error) {
	if err := arity("let*", operands, 1, -1); err != nil {
		return nil, err
	}

	bs, err := bindings("let*", operands[0])
	if err != nil {
		return nil, err
	}

	e.env.Push()
	defer e.env.Pop()

	for _, b := range bs {
		v, err := e.Evaluate(b.init)
		if err != nil {
			return nil, err
		}

		e.env.Set(b.name, v)
	}

	return e.sequence(operands[1:])
}

// Every variable is bound, to the empty list, before any initializer is
// evaluated so initializers can refer to each other.
func (e *T) letrec(operands []cell.I) (cell.I, error) {
	if err := arity("letrec", operands, 1, -1); err != nil {
		return nil, err
	}

	bs, err := bindings("letrec", operands[0])
	if err != nil {
		return nil, err
	}

	e.env.Push()
	defer e.env.Pop()

	for _, b := range bs {
		e.env.Set(b.name, list.Null)
	}

	for _, b := range bs {
		v, err := e.Evaluate(b.init)
		if err != nil {
			return nil, err
		}

		e.env.Set(b.name, v)
	}

	return e.sequence(operands[1:])
}

// (loop body...) repeats its body until a signal or an error ends it.
// When its first operand is a list of bindings and its second is a list
// it is the same as do.
func (e *T) loop(operands []cell.I) (cell.I, error) {
	if len(operands) >= 2 && isBindings(operands[0]) && isClause(operands[1]) {
		return e.iterate("loop", operands)
	}

	for {
		for _, c := range operands {
			if _, err := e.Evaluate(c); err != nil {
				return exit(err)
			}
		}
	}
}

// (or) is the empty list. Otherwise the value is the first true operand.
func (e *T) or(operands []cell.I) (cell.I, error) {
	for _, c := range operands {
		v, err := e.Evaluate(c)
		if err != nil {
			return nil, err
		}

		if truth.Value(v) {
			return v, nil
		}
	}

	return list.Null, nil
}

func (e *T) progn(operands []cell.I) (cell.I, error) {
	return e.sequence(operands)
}

func (e *T) quote(operands []cell.I) (cell.I, error) {
	if err := arity("quote", operands, 1, 1); err != nil {
		return nil, err
	}

	return operands[0], nil
}

func (e *T) returnFrom(operands []cell.I) (cell.I, error) {
	if err := arity("return-from", operands, 1, 2); err != nil {
		return nil, err
	}

	label, err := symbolName("return-from", operands[0])
	if err != nil {
		return nil, err
	}

	var v cell.I = list.Null

	if len(operands) == 2 { //nolint:gomnd
		v, err = e.Evaluate(operands[1])
		if err != nil {
			return nil, err
		}
	}

	return nil, &signal.ReturnFrom{Block: label, Value: v}
}

// Symbols among the operands are labels. They are not evaluated.
// A go to one of the labels resumes evaluation after that label.
func (e *T) tagbody(operands []cell.I) (cell.I, error) {
	labels := map[string]int{}

	for i, c := range operands {
		if s, ok := c.(sym.T); ok {
			labels[string(s)] = i
		}
	}

	for pc := 0; pc < len(operands); {
		c := operands[pc]
		pc++

		if sym.Is(c) && !sym.IsKeyword(c) {
			continue
		}

		_, err := e.Evaluate(c)
		if err == nil {
			continue
		}

		var g *signal.Go
		if !errors.As(err, &g) {
			return nil, err
		}

		i, ok := labels[g.Label]
		if !ok {
			return nil, err
		}

		pc = i + 1
	}

	return list.Null, nil
}

func (e *T) throw(operands []cell.I) (cell.I, error) {
	if err := arity("throw", operands, 2, 2); err != nil {
		return nil, err
	}

	tag, err := e.Evaluate(operands[0])
	if err != nil {
		return nil, err
	}

	v, err := e.Evaluate(operands[1])
	if err != nil {
		return nil, err
	}

	return nil, &signal.Throw{Tag: tag, Value: v}
}

func (e *T) unless(operands []cell.I) (cell.I, error) {
	return e.guarded("unless", operands, false)
}

// Every cleanup form runs however the protected form exits. The first
// cleanup error replaces the outcome of the protected form.
func (e *T) unwindProtect(operands []cell.I) (cell.I, error) {
	if err := arity("unwind-protect", operands, 1, -1); err != nil {
		return nil, err
	}

	r, err := e.Evaluate(operands[0])

	failed := false

	for _, c := range operands[1:] {
		if _, cerr := e.Evaluate(c); cerr != nil && !failed {
			err = cerr
			failed = true
		}
	}

	if err != nil {
		return nil, err
	}

	return r, nil
}

func (e *T) when(operands []cell.I) (cell.I, error) {
	return e.guarded("when", operands, true)
}

// Helpers.

type binding struct {
	init cell.I
	name string
}

func arity(form string, operands []cell.I, min, max int) error {
	n := len(operands)

	switch {
	case max < 0 && n < min:
		return fmt.Errorf("%s requires at least %s", form, validate.Count(min, "argument", "s"))
	case max < 0:
		return nil
	case n >= min && n <= max:
		return nil
	case min == max:
		return fmt.Errorf("%s requires exactly %s", form, validate.Count(min, "argument", "s"))
	}

	return fmt.Errorf("%s requires %d or %d arguments", form, min, max)
}

// A binding is (name init), (name) or a bare name. A missing initializer
// is the empty list.
func bindings(form string, c cell.I) ([]binding, error) {
	l, ok := c.(list.T)
	if !ok {
		return nil, fmt.Errorf("%s bindings must be a list", form)
	}

	bs := make([]binding, len(l))

	for i, b := range l {
		target, init := b, cell.I(list.Null)

		if pl, ok := b.(list.T); ok {
			if len(pl) < 1 || len(pl) > 2 {
				return nil, fmt.Errorf("%s binding must be (name value): %s", form, literal.String(b))
			}

			target = pl[0]

			if len(pl) == 2 { //nolint:gomnd
				init = pl[1]
			}
		}

		n, ok, err := name(target, "Cannot bind a keyword")
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, fmt.Errorf("%s binding name must be a symbol: %s", form, literal.String(target))
		}

		bs[i] = binding{init: init, name: n}
	}

	return bs, nil
}

func clauseOf(form string, c cell.I) (list.T, error) {
	clause, ok := c.(list.T)
	if !ok || len(clause) == 0 {
		return nil, fmt.Errorf("%s clause must be a non-empty list: %s", form, literal.String(c))
	}

	return clause, nil
}

// A return-from nil ends a do or loop with its value.
func exit(err error) (cell.I, error) {
	var rf *signal.ReturnFrom
	if errors.As(err, &rf) && rf.Block == "nil" {
		return rf.Value, nil
	}

	return nil, err
}

func (e *T) guarded(form string, operands []cell.I, when bool) (cell.I, error) {
	if err := arity(form, operands, 1, -1); err != nil {
		return nil, err
	}

	v, err := e.Evaluate(operands[0])
	if err != nil {
		return nil, err
	}

	if truth.Value(v) != when {
		return list.Null, nil
	}

	return e.sequence(operands[1:])
}

// Loop variables are a non-empty list of (name init step) entries, each
// headed by a symbol.
func isBindings(c cell.I) bool {
	l, ok := c.(list.T)
	if !ok || len(l) == 0 {
		return false
	}

	for _, b := range l {
		pl, ok := b.(list.T)
		if !ok || len(pl) == 0 || len(pl) > 3 || !sym.Is(pl[0]) {
			return false
		}
	}

	return true
}

func isClause(c cell.I) bool {
	l, ok := c.(list.T)

	return ok && len(l) > 0
}

// (do ((name init step)...) (test result...) body...)
//
// Initializers are evaluated in the enclosing scope. Before each pass the
// test is evaluated. When it is true the results are evaluated and the
// value of the last is the value of the loop. Otherwise the body runs and
// every variable with a step is rebound, in parallel, to its step's value.
// A return-from nil anywhere in the loop, initializers included, ends it.
func (e *T) iterate(form string, operands []cell.I) (cell.I, error) {
	if err := arity(form, operands, 2, -1); err != nil {
		return nil, err
	}

	vars, err := steppers(form, operands[0])
	if err != nil {
		return nil, err
	}

	end, err := clauseOf(form, operands[1])
	if err != nil {
		return nil, err
	}

	values := make([]cell.I, len(vars))

	for i, v := range vars {
		values[i], err = e.Evaluate(v.init)
		if err != nil {
			return exit(err)
		}
	}

	e.env.Push()
	defer e.env.Pop()

	for i, v := range vars {
		e.env.Set(v.name, values[i])
	}

	for {
		done, err := e.Evaluate(end[0])
		if err != nil {
			return exit(err)
		}

		if truth.Value(done) {
			v, err := e.sequence(end[1:])
			if err != nil {
				return exit(err)
			}

			return v, nil
		}

		if _, err := e.sequence(operands[2:]); err != nil {
			return exit(err)
		}

		for i, v := range vars {
			if v.step == nil {
				continue
			}

			values[i], err = e.Evaluate(v.step)
			if err != nil {
				return exit(err)
			}
		}

		for i, v := range vars {
			if v.step != nil {
				e.env.Set(v.name, values[i])
			}
		}
	}
}

func matches(data, key cell.I, otherwise ...string) bool {
	if s, ok := data.(sym.T); ok {
		for _, o := range otherwise {
			if string(s) == o {
				return true
			}
		}
	}

	if l, ok := data.(list.T); ok {
		for _, d := range l {
			if d.Equal(key) {
				return true
			}
		}

		return false
	}

	return data.Equal(key)
}

type stepper struct {
	binding
	step cell.I
}

// A variable is (name init step), (name init), (name) or a bare name.
func steppers(form string, c cell.I) ([]stepper, error) {
	l, ok := c.(list.T)
	if !ok {
		return nil, fmt.Errorf("%s variables must be a list", form)
	}

	vars := make([]stepper, len(l))

	for i, v := range l {
		var step cell.I

		if pl, ok := v.(list.T); ok && len(pl) == 3 { //nolint:gomnd
			step = pl[2]
			v = pl[:2]
		}

		bs, err := bindings(form, list.T{v})
		if err != nil {
			return nil, err
		}

		vars[i] = stepper{binding: bs[0], step: step}
	}

	return vars, nil
}

func symbolName(form string, c cell.I) (string, error) {
	s, ok := c.(sym.T)
	if !ok {
		return "", fmt.Errorf("%s requires a symbol, got %s", form, literal.String(c))
	}

	return string(s), nil
}
