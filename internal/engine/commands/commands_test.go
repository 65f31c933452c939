package commands_test

import (
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/engine"
	"github.com/michaelmacinnis/zeus/internal/engine/commands"
)

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
			e := engine.New(engine.Output(io.Discard))

			for j, s := range test.sequence {
				c, err := e.EvaluateText(s.expr)

				actual := ""
				if err != nil {
					actual = "Error: " + err.Error()
				} else {
					actual = literal.String(c)
				}

				assert.Equal(t, s.result, actual, "expr %d: %s", j, s.expr)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	run(t, suite{
		{"exact", sequence{
			{"(+)", "0"},
			{"(*)", "1"},
			{"(+ 1 2 3)", "6"},
			{"(* 2 3 4)", "24"},
			{"(- 10 4 1)", "5"},
			{"(- 5)", "-5"},
			{"(/ 10 2)", "5"},
			{"(/ 10 4)", "2.5"},
			{"(/ 4)", "0.25"},
			{"(+ 9223372036854775807 1)", "9223372036854776000.0"},
		}},
		{"inexact", sequence{
			{"(+ 1 2.5)", "3.5"},
			{"(+ 1/2 1/2)", "1.0"},
			{"(* 1/2 4)", "2.0"},
			{"(- 0.5)", "-0.5"},
		}},
		{"division by zero", sequence{
			{"(/ 10 0)", "Error: Division by zero"},
			{"(/ 1.5 0)", "Error: Division by zero"},
			{"(/ 0)", "Error: Division by zero"},
			{"(mod 7 0)", "Error: Division by zero"},
		}},
		{"mod", sequence{
			{"(mod 7 3)", "1"},
			{"(mod -7 3)", "2"},
			{"(mod 7 -3)", "-2"},
			{"(mod 7.0 3)", "Error: mod requires integer arguments, got 7.0"},
		}},
		{"errors", sequence{
			{`(+ 1 "a")`, `Error: + requires numeric arguments, got "a"`},
			{"(-)", "Error: - expects at least 1 argument, passed 0"},
			{"(/)", "Error: / expects at least 1 argument, passed 0"},
		}},
	})
}

func TestCharacters(t *testing.T) {
	run(t, suite{
		{"conversion", sequence{
			{`(char->integer #\a)`, "97"},
			{"(integer->char 65)", `#\A`},
			{"(integer->char 32)", `#\space`},
			{"(integer->char -1)", "Error: integer->char: invalid code point -1"},
			{"(integer->char 55296)", "Error: integer->char: invalid code point 55296"},
			{`(char-upcase #\a)`, `#\A`},
			{`(char-downcase #\A)`, `#\a`},
		}},
		{"comparison", sequence{
			{`(char= #\a #\a)`, "t"},
			{`(char< #\a #\b #\c)`, "t"},
			{`(char> #\a #\b)`, "()"},
			{`(char= #\a "a")`, `Error: char= requires character arguments, got "a"`},
		}},
	})
}

func TestFunctional(t *testing.T) {
	run(t, suite{
		{"mapcar", sequence{
			{"(mapcar + (list 1 2) (list 10 20 30))", "(11 22)"},
			{"(mapcar (lambda (x) (* x x)) (list 1 2 3))", "(1 4 9)"},
			{"(mapcar car (list (list 1) (list 2)))", "(1 2)"},
			{"(mapcar + () (list 1))", "()"},
			{"(mapcar 1 (list 1))", "Error: mapcar requires a function as first argument"},
		}},
		{"filter and remove", sequence{
			{"(filter (lambda (x) (> x 1)) (list 1 2 3))", "(2 3)"},
			{"(remove (lambda (x) (> x 1)) (list 1 2 3))", "(1)"},
			{"(filter integerp (list 1 2.0 3))", "(1 3)"},
		}},
		{"reduce", sequence{
			{"(reduce + (list 1 2 3))", "6"},
			{"(reduce + () 0)", "0"},
			{"(reduce cons (list 1 2) ())", "((() . 1) . 2)"},
			{"(reduce + ())", "Error: reduce of empty list with no initial value"},
		}},
		{"apply and funcall", sequence{
			{"(apply + (list 1 2 3))", "6"},
			{"(funcall + 1 2)", "3"},
			{"(funcall (lambda () 1))", "1"},
			{"(apply 5 (list 1))", "Error: apply requires a function as first argument"},
			{"(apply + 1)", "Error: apply requires a list argument, got 1"},
		}},
	})
}

func TestHashTables(t *testing.T) {
	run(t, suite{
		{"copy on write", sequence{
			{"(define h1 (make-hash-table))", "#<hash-table:0>"},
			{`(define h2 (hash-set! h1 "k" 1))`, "#<hash-table:1>"},
			{"(hash-count h1)", "0"},
			{`(hash-ref h2 "k")`, "1"},
			{`(hash-ref h1 "k")`, `Error: Key not found in hash table: "k"`},
			{`(hash-ref h1 "k" 7)`, "7"},
			{`(equal h2 (hash-set! h1 "k" 1))`, "t"},
		}},
		{"keys and values", sequence{
			{`(define h (hash-set! (hash-set! (hash-set! (make-hash-table) "k" 1) 'b 2) 3 #\c))`, "#<hash-table:3>"},
			{"(hash-keys h)", `(3 "k" b)`},
			{"(hash-values h)", `(#\c 1 2)`},
			{`(hash-count (hash-remove! h "k"))`, "2"},
			{"(hash-count h)", "3"},
			{"(length h)", "3"},
			{"(hash-ref h 'b)", "2"},
		}},
		{"errors", sequence{
			{"(hash-set! (make-hash-table) (list 1) 2)", "Error: unhashable key: (1)"},
			{"(hash-ref (make-hash-table))", "Error: hash-ref expects at least 2 arguments, passed 1"},
			{"(hash-count 1)", "Error: hash-count requires a hash table argument, got 1"},
		}},
	})
}

func TestLists(t *testing.T) {
	run(t, suite{
		{"construction", sequence{
			{"(list)", "()"},
			{"(list 1 2)", "(1 2)"},
			{"(cons 1 2)", "(1 . 2)"},
			{"(cons 1 (list 2 3))", "(1 2 3)"},
			{"(cons 1 (cons 2 3))", "(1 2 . 3)"},
			{"(append (list 1) () (list 2 3))", "(1 2 3)"},
			{"(append)", "()"},
			{"(reverse (list 1 2 3))", "(3 2 1)"},
		}},
		{"access", sequence{
			{"(car (list 1 2))", "1"},
			{"(cdr (list 1 2))", "(2)"},
			{"(car ())", "()"},
			{"(cdr ())", "()"},
			{"(car (cons 1 2))", "1"},
			{"(cdr (cons 1 2))", "2"},
			{"(nth 1 (list 'a 'b))", "b"},
			{"(nth 5 (list 1))", "Error: nth index out of bounds: 5"},
			{"(nth -1 (list 1))", "Error: nth index must be a non-negative integer, got -1"},
			{"(nthcdr 1 (list 1 2 3))", "(2 3)"},
			{"(nthcdr 9 (list 1))", "()"},
			{"(car 1)", "Error: car requires a list argument, got 1"},
			{"(car 1 2)", "Error: car expects 1 argument, passed 2"},
		}},
		{"length and member", sequence{
			{"(length (list 1 2))", "2"},
			{`(length "héllo")`, "5"},
			{"(length [1 2 3])", "3"},
			{"(length 1)", "Error: length requires a sequence argument, got 1"},
			{"(member 2 (list 1 2 3))", "(2 3)"},
			{"(member 2.0 (list 1 2 3))", "(2 3)"},
			{"(member 9 (list 1))", "()"},
			{"(member (list 1) (list (list 1) 2))", "((1) 2)"},
		}},
	})
}

func TestPredicates(t *testing.T) {
	run(t, suite{
		{"numbers", sequence{
			{"(integerp 1)", "t"},
			{"(integerp 1.0)", "()"},
			{"(floatp 1.0)", "t"},
			{"(rationalp 1/2)", "t"},
			{"(rationalp 1)", "()"},
			{"(numberp 1/2)", "t"},
			{`(numberp "1")`, "()"},
		}},
		{"other types", sequence{
			{`(characterp #\a)`, "t"},
			{`(stringp "s")`, "t"},
			{"(symbolp 'a)", "t"},
			{"(symbolp :a)", "t"},
			{"(keywordp :a)", "t"},
			{"(keywordp 'a)", "()"},
			{"(vectorp [1])", "t"},
			{"(hash-table-p (make-hash-table))", "t"},
			{"(listp ())", "t"},
			{"(listp (cons 1 2))", "t"},
			{"(consp ())", "()"},
			{"(consp (list 1))", "t"},
			{"(functionp car)", "t"},
			{"(functionp (lambda (x) x))", "t"},
			{"(functionp 1)", "()"},
		}},
		{"logic and equality", sequence{
			{"(not ())", "t"},
			{"(not 0)", "()"},
			{"(null nil)", "t"},
			{"(equal (list 1 (list 2)) (list 1 (list 2)))", "t"},
			{"(equal 1 1.0)", "t"},
			{`(equal "a" "b")`, "()"},
			{"(not)", "Error: not expects 1 argument, passed 0"},
		}},
	})
}

func TestRelational(t *testing.T) {
	run(t, suite{
		{"ordering", sequence{
			{"(< 1 2 3)", "t"},
			{"(< 1 3 2)", "()"},
			{"(<= 1 1 2)", "t"},
			{"(> 3 2 1)", "t"},
			{"(>= 3 3 4)", "()"},
			{"(< 1/2 0.6)", "t"},
			{`(< 1 "a")`, `Error: < requires numeric arguments, got "a"`},
		}},
		{"equality", sequence{
			{"(= 1 1.0)", "t"},
			{"(= 1 2)", "()"},
			{"(= 1 1 1)", "t"},
			{`(= 1 "a")`, `Error: = requires numeric arguments, got "a"`},
			{"(/= 1 (list 1))", "Error: /= requires numeric arguments, got (1)"},
			{"(/= 1 2 3)", "t"},
			{"(/= 1 2 1)", "()"},
			{"(= 1)", "Error: = expects at least 2 arguments, passed 1"},
		}},
	})
}

func TestStrings(t *testing.T) {
	run(t, suite{
		{"building", sequence{
			{`(string-append "a" "b" "c")`, `"abc"`},
			{`(string-append)`, `""`},
			{`(string-join (list "a" "b") "-")`, `"a-b"`},
			{`(string-split "a,b,c" ",")`, `("a" "b" "c")`},
			{`(format "%d-%s-%c" 1 "a" #\b)`, `"1-a-b"`},
			{`(format "%v and %v" (list 1) 2.5)`, `"(1) and 2.5"`},
			{"(number->string 1.5)", `"1.5"`},
			{"(number->string 1/2)", `"1/2"`},
		}},
		{"slicing", sequence{
			{`(string-length "héllo")`, "5"},
			{`(substring "hello" 1 3)`, `"el"`},
			{`(substring "hello" 1)`, `"ello"`},
			{`(substring "hello" 1 -1)`, `"ell"`},
			{`(substring "hello" 2 99)`, `"llo"`},
			{`(substring "hello" -1)`, "Error: substring starts before first character: -1"},
			{`(substring "hello" 3 1)`, "Error: substring ends before it starts: 1 < 3"},
		}},
		{"transformation", sequence{
			{`(string-upcase "abc")`, `"ABC"`},
			{`(string-downcase "ABC")`, `"abc"`},
			{`(string-replace "aaa" "a" "b")`, `"bbb"`},
			{`(string-replace "aaa" "a" "b" 2)`, `"bba"`},
			{`(string-trim-prefix "prefix-x" "prefix-")`, `"x"`},
			{`(string-trim-suffix "x.go" ".go")`, `"x"`},
		}},
		{"matching", sequence{
			{`(string-match "*.go" "main.go")`, "t"},
			{`(string-match "*.go" "main.c")`, "()"},
			{`(string-match "m?in.[cg]o" "main.go")`, "t"},
		}},
		{"symbols", sequence{
			{"(symbol-name 'foo)", `"foo"`},
			{"(symbol-name :foo)", `"foo"`},
			{`(string->symbol "bar")`, "bar"},
			{"(string-length 1)", "Error: string-length requires a string argument, got 1"},
		}},
	})
}

func TestVectors(t *testing.T) {
	run(t, suite{
		{"copy on write", sequence{
			{"(define v (vector 1 2 3))", "[1 2 3]"},
			{"(vector-set! v 0 9)", "[9 2 3]"},
			{"v", "[1 2 3]"},
			{"(vector-ref v 2)", "3"},
			{"(vector-length v)", "3"},
			{"(vector->list v)", "(1 2 3)"},
		}},
		{"construction", sequence{
			{"(vector)", "[]"},
			{"(make-vector 2 0)", "[0 0]"},
			{"(make-vector 2)", "[() ()]"},
			{"(list->vector (list 1 2))", "[1 2]"},
		}},
		{"errors", sequence{
			{"(vector-ref (vector 1 2 3) 3)", "Error: index 3 out of bounds for vector of length 3"},
			{"(vector-ref (vector 1) -1)", "Error: index -1 out of bounds for vector of length 1"},
			{"(vector-set! (vector) 0 1)", "Error: index 0 out of bounds for vector of length 0"},
			{"(vector-ref (list 1) 0)", "Error: vector-ref requires a vector argument, got (1)"},
			{"(make-vector -1)", "Error: make-vector index must be a non-negative integer, got -1"},
			{"(make-vector 10000000000)", "Error: make-vector: vector length 10000000000 is outside 0 to 16777216"},
		}},
	})
}

func TestFunctionsAreBound(t *testing.T) {
	e := engine.New()

	names := make([]string, 0, len(commands.Functions()))
	for name := range commands.Functions() {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		c, ok := e.Env().Lookup(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, name, literal.String(c))
			assert.True(t, e.IsFunction(c), name)
		}
	}
}
