package engine

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/common/type/integer"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
	"github.com/michaelmacinnis/zeus/internal/reader"
)

// sequence is a list of expressions evaluated, in order, in one session.
// A result starting with "Error: " is the expected error message.
type sequence []struct {
	expr   string
	result string
}

type suite []struct {
	name string
	sequence
}

func run(t *testing.T, tests suite) {
	t.Helper()

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			e := New(Output(io.Discard))

			for j, s := range test.sequence {
				assert.Equal(t, s.result, evaluate(e, s.expr), "expr %d: %s", j, s.expr)
			}
		})
	}
}

func evaluate(e *T, s string) string {
	c, err := e.EvaluateText(s)
	if err != nil {
		return "Error: " + err.Error()
	}

	return literal.String(c)
}

func TestEvaluation(t *testing.T) {
	run(t, suite{
		{"self-evaluating", sequence{
			{"42", "42"},
			{"2.5", "2.5"},
			{"1/2", "1/2"},
			{`"str"`, `"str"`},
			{`#\a`, `#\a`},
			{":key", ":key"},
			{"[1 (+ 1 1)]", "[1 (+ 1 1)]"},
			{"()", "()"},
			{"", "()"},
		}},
		{"constants", sequence{
			{"t", "t"},
			{"nil", "()"},
			{"car", "car"},
		}},
		{"application", sequence{
			{"(+ 1 2)", "3"},
			{"((quote +) 1 2)", "3"},
			{"((lambda (x y) (* x y)) 6 7)", "42"},
			{"(5 1)", "Error: Cannot apply: 5"},
			{`("f")`, `Error: Cannot apply: "f"`},
			{"(undefined)", "Error: Undefined variable: undefined"},
			{"x", "Error: Undefined variable: x"},
		}},
		{"truth", sequence{
			{`(if 0 "a" "b")`, `"a"`},
			{`(if "" "a" "b")`, `"a"`},
			{`(if () "a" "b")`, `"b"`},
			{`(if nil "a")`, "()"},
			{"(if 1)", "Error: if requires 2 or 3 arguments"},
		}},
	})
}

func TestDefinitions(t *testing.T) {
	run(t, suite{
		{"define", sequence{
			{"(define x 10)", "10"},
			{"x", "10"},
			{"(define x (+ x 1))", "11"},
			{"(define :k 1)", "Error: Cannot define a keyword"},
			{"(define 5 1)", "Error: First argument to define must be a symbol"},
			{"(define x)", "Error: define requires exactly 2 arguments"},
		}},
		{"defun", sequence{
			{"(defun square (x) (* x x))", "square"},
			{"(square 7)", "49"},
			{"square", "(lambda (x) (* x x))"},
			{"(square 1 2)", "Error: Lambda expects 1 arguments, got 2"},
			{"(defun f (x) (define y x) (+ y 1))", "f"},
			{"(f 4)", "5"},
			{"y", "Error: Undefined variable: y"},
			{"(defun :g (x) x)", "Error: Cannot defun a keyword"},
			{"(defun g (x))", "Error: defun requires at least 3 arguments"},
		}},
		{"lambda", sequence{
			{"(lambda (x) x)", "(lambda (x) x)"},
			{"((lambda () 7))", "7"},
			{"(lambda (:a) 1)", "Error: Lambda parameter cannot be a keyword"},
			{"(lambda x 1)", "Error: Lambda parameters must be a list"},
			{"(lambda (1) 1)", "Error: Lambda parameters must be symbols"},
			{"(lambda (x))", "Error: lambda requires exactly 2 arguments"},
		}},
		{"free variables resolve when called", sequence{
			{"(define make-adder (lambda (n) (lambda (x) (+ x n))))", "(lambda (n) (lambda (x) (+ x n)))"},
			{"((make-adder 1) 2)", "Error: Undefined variable: n"},
			{"(define n 100)", "100"},
			{"((make-adder 1) 2)", "102"},
		}},
		{"quote", sequence{
			{"(quote x)", "x"},
			{"'(+ 1 2)", "(+ 1 2)"},
			{"(quote)", "Error: quote requires exactly 1 argument"},
		}},
	})
}

func TestConditionals(t *testing.T) {
	run(t, suite{
		{"when and unless", sequence{
			{"(when 1 2 3)", "3"},
			{"(when () 1)", "()"},
			{"(unless () 1 2)", "2"},
			{"(unless t 1)", "()"},
		}},
		{"cond", sequence{
			{"(cond ((= 1 2) 'a) ((+ 1 1)) (t 'c))", "2"},
			{"(cond ((= 1 2) 'a) (t 'c))", "c"},
			{"(cond (() 1))", "()"},
			{"(cond (else 'e))", "e"},
			{"(cond)", "()"},
			{"(cond 1)", "Error: cond clause must be a non-empty list: 1"},
		}},
		{"case", sequence{
			{"(case 2 ((1 2) 'low) (else 'high))", "low"},
			{"(case 9 ((1 2) 'low) (else 'high))", "high"},
			{"(case :bar (:foo 'f) (:bar 'b))", "b"},
			{`(case "x" ("x" 1) (otherwise 2))`, "1"},
			{"(case 1.0 (1 'one))", "one"},
			{"(case 3 (1 'one))", "()"},
		}},
		{"and and or", sequence{
			{"(and)", "t"},
			{"(or)", "()"},
			{"(and 1 2)", "2"},
			{"(and 1 () (undefined))", "()"},
			{"(or () 2 (undefined))", "2"},
			{"(or () ())", "()"},
		}},
		{"progn and begin", sequence{
			{"(progn 1 2 3)", "3"},
			{"(begin)", "()"},
		}},
	})
}

func TestBindings(t *testing.T) {
	run(t, suite{
		{"let is parallel", sequence{
			{"(define x 10)", "10"},
			{"(let ((x 20) (y x)) y)", "10"},
			{"(let ((x 20)) x)", "20"},
			{"x", "10"},
		}},
		{"let* is sequential", sequence{
			{"(define x 10)", "10"},
			{"(let* ((x 20) (y x)) y)", "20"},
			{"x", "10"},
		}},
		{"binding shapes", sequence{
			{"(let (a (b) (c 3)) (list a b c))", "(() () 3)"},
			{"(let ())", "()"},
			{"(let ((:k 1)) 1)", "Error: Cannot bind a keyword"},
			{"(let x 1)", "Error: let bindings must be a list"},
			{"(let ((x 1 2)) x)", "Error: let binding must be (name value): (x 1 2)"},
		}},
		{"letrec", sequence{
			{`(letrec ((even? (lambda (n) (if (= n 0) t (odd? (- n 1)))))
			           (odd? (lambda (n) (if (= n 0) () (even? (- n 1))))))
			   (list (even? 10) (odd? 7) (even? 3)))`, "(t t ())"},
		}},
		{"scopes are removed on error", sequence{
			{"(define x 1)", "1"},
			{"(let ((x 2)) (car x))", "Error: car requires a list argument, got 2"},
			{"x", "1"},
			{"((lambda (x) (car x)) 3)", "Error: car requires a list argument, got 3"},
			{"x", "1"},
		}},
	})
}

func TestIteration(t *testing.T) {
	run(t, suite{
		{"do", sequence{
			{"(do ((i 0 (+ i 1))) ((= i 5) i))", "5"},
			{"(do ((i 0 (+ i 1)) (acc () (cons i acc))) ((= i 3) acc))", "(2 1 0)"},
			{"(do ((i 0 (+ i 1))) ((= i 3)))", "()"},
			{"(do ((i 0 (+ i 1))) (() 1) (when (= i 4) (return-from nil (* i 2))))", "8"},
			{"(do ((i 0 (+ i 1))) ((return-from nil 3)))", "3"},
			{"(do ((i 0 (+ i 1))) ((= i 2) (return-from nil (* i 7))))", "14"},
			{"(do ((i 0 (if (= i 2) (return-from nil 'stepped) (+ i 1)))) (()))", "stepped"},
			{"(do ((i (return-from nil 'early))) (1))", "early"},
			{"(do ((i 0)) ())", "Error: do clause must be a non-empty list: ()"},
			{"i", "Error: Undefined variable: i"},
		}},
		{"loop", sequence{
			{"(define n 0)", "0"},
			{"(loop (define n (+ n 1)) (when (= n 3) (return-from nil n)))", "3"},
			{"(loop ((i 0 (+ i 1))) ((= i 4) (* i 10)))", "40"},
			{"(loop (car 1))", "Error: car requires a list argument, got 1"},
			{"(loop () (return-from nil 1))", "1"},
			{"(loop (list 1) (return-from nil 2))", "2"},
		}},
		{"tagbody", sequence{
			{"(define i 0)", "0"},
			{"(define acc 0)", "0"},
			{`(tagbody
			   start
			   (when (< i 5)
			     (define acc (+ acc i))
			     (define i (+ i 1))
			     (go start)))`, "()"},
			{"acc", "10"},
			{"(tagbody (go end) (define acc 99) end)", "()"},
			{"acc", "10"},
			{"(go nowhere)", "Error: Unhandled go to label nowhere"},
			{"(tagbody (go elsewhere))", "Error: Unhandled go to label elsewhere"},
		}},
	})
}

func TestNonLocalExit(t *testing.T) {
	run(t, suite{
		{"catch and throw", sequence{
			{"(catch 'tag (throw 'tag 42))", "42"},
			{"(catch 'tag 1 2)", "2"},
			{"(catch 'a (catch 'b (throw 'a 1)) 2)", "1"},
			{"(catch (+ 1 1) (throw 2 'two))", "two"},
			{"(throw 'nope 1)", "Error: Uncaught throw for tag nope"},
			{"(throw 'nope)", "Error: throw requires exactly 2 arguments"},
		}},
		{"block and return-from", sequence{
			{"(block outer (+ 1 (return-from outer 5)) 99)", "5"},
			{"(block outer (block inner (return-from outer 1)) 2)", "1"},
			{"(block b (return-from b))", "()"},
			{"(block b)", "()"},
			{"(return-from nowhere 1)", "Error: Unhandled return-from for block nowhere"},
			{"(block 1 2)", "Error: block requires a symbol, got 1"},
		}},
		{"unwind-protect", sequence{
			{"(define n 0)", "0"},
			{"(unwind-protect 1 (define n (+ n 1)))", "1"},
			{"n", "1"},
			{"(catch 'done (unwind-protect (throw 'done 5) (define n (+ n 1))))", "5"},
			{"n", "2"},
			{"(unwind-protect (car 1) (define n (+ n 1)))", "Error: car requires a list argument, got 1"},
			{"n", "3"},
			{"(unwind-protect 1 (car 2) (define n (+ n 1)))", "Error: car requires a list argument, got 2"},
			{"n", "4"},
		}},
	})
}

func TestSymbols(t *testing.T) {
	run(t, suite{
		{"gensym", sequence{
			{"(gensym)", "#:G0"},
			{"(gensym)", "#:G1"},
			{`(gensym "tmp")`, "#:tmp2"},
			{"(gensym 10)", "#:G10"},
			{"(gensym)", "#:G11"},
			{"(gensym 'foo)", "Error: gensym argument must be a string or integer, got foo"},
			{"(symbolp (gensym))", "t"},
		}},
		{"properties", sequence{
			{"(get 'foo 'missing)", "()"},
			{"(symbol-plist 'bar)", "()"},
			{"(put 'bar 'x 10)", "10"},
			{"(put 'bar 'y 20)", "20"},
			{"(symbol-plist 'bar)", "(:x 10 :y 20)"},
			{"(get 'bar 'y)", "20"},
			{"(put 'bar 'x 30)", "30"},
			{"(symbol-plist 'bar)", "(:x 30 :y 20)"},
		}},
	})
}

func TestUninterned(t *testing.T) {
	e := New(Output(io.Discard))
	g := sym.NewUninterned("G", 0)

	_, err := e.Evaluate(list.New(sym.New("define"), g, integer.New(1)))
	require.NoError(t, err)

	assert.Equal(t, "Error: Undefined variable: G", evaluate(e, "G"))

	assert.Equal(t, "2", evaluate(e, "(define G 2)"))

	v, err := e.Evaluate(g)
	require.NoError(t, err)
	assert.Equal(t, "1", literal.String(v))
	assert.Equal(t, "2", evaluate(e, "G"))
}

func TestLoad(t *testing.T) {
	e := New()

	v, err := e.Load(`
(defun fact (n)
  (if (<= n 1) 1 (* n (fact (- n 1)))))
(fact 10)
`)
	require.NoError(t, err)
	assert.Equal(t, "3628800", literal.String(v))

	_, err = e.Load("(fact 3) (car 1) (define never 1)")
	assert.EqualError(t, err, "car requires a list argument, got 1")

	_, ok := e.Env().Lookup("never")
	assert.False(t, ok)

	_, err = e.Load("(fact")
	assert.EqualError(t, err, "Unexpected end of input")
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer

	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(Logger(l))

	_, err := e.EvaluateText("(if t (+ 1 2) 0)")
	require.NoError(t, err)

	assert.Contains(t, b.String(), "msg=form name=if operands=3")
	assert.Contains(t, b.String(), "msg=apply function=+ arguments=2")
}

func TestOutput(t *testing.T) {
	var b bytes.Buffer

	e := New(Output(&b))

	assert.Equal(t, `(1 "b")`, evaluate(e, `(print "a" 1 #\# '(1 "b"))`))
	assert.Equal(t, `a1#(1 "b")`, b.String())

	b.Reset()
	assert.Equal(t, "1", evaluate(e, `(println "x" 1)`))
	assert.Equal(t, "x\n1\n", b.String())

	b.Reset()
	assert.Equal(t, "()", evaluate(e, "(println)"))
	assert.Equal(t, "\n", b.String())
}

func TestQuotedRoundTrip(t *testing.T) {
	e := New()

	for _, s := range []string{
		`(a "b\n" #\c 1.5 -2 1/3 [1 [2]] :k (nested (list)))`,
		`[]`,
		`(#\space #\newline "tab\t")`,
	} {
		v, err := e.EvaluateText("(quote " + s + ")")
		require.NoError(t, err, s)

		r, err := reader.Read(literal.String(v))
		require.NoError(t, err, s)

		assert.True(t, v.Equal(r), s)
		assert.Equal(t, literal.String(v), literal.String(r), s)
	}
}

func TestScopeDepth(t *testing.T) {
	e := New()

	for _, s := range []string{
		"(let ((x 1)) (car x))",
		"(catch 'up (let ((x 1)) (let* ((y 2)) (throw 'up y))))",
		"(block b (letrec ((f (lambda () (return-from b 1)))) (f)))",
		"(do ((i 0 (+ i 1))) ((= i 2)) (let ((j i)) j))",
	} {
		_, _ = e.EvaluateText(s)
		assert.Equal(t, 1, e.Env().Depth(), s)
	}
}
