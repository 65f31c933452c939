// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the zeus language.
//
// The zeus lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/zeus/internal/common/struct/token"
	"github.com/michaelmacinnis/zeus/internal/common/type/char"
)

// ErrUnterminated is returned when the input ends inside a string.
var ErrUnterminated = errors.New("Unterminated string") //nolint:stylecheck

// T holds the state of the scanner.
type T struct {
	bytes string     // Buffer being scanned.
	err   error      // Error that stopped the scanner.
	first int        // Index of the current token's first byte.
	index int        // Index of the current byte.
	label string     // Name of the source being scanned.
	queue []*token.T // Tokens emitted but not yet returned.
	state action     // Current action.
	text  []rune     // Decoded value of the current string.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{label: label, state: skipWhitespace}
}

// All scans text and returns every token in it.
func All(label, text string) ([]*token.T, error) {
	l := New(label)

	l.Scan(text)

	var tokens []*token.T

	for {
		t, err := l.Token()
		if err != nil {
			return nil, err
		}

		if t == nil {
			return tokens, nil
		}

		tokens = append(tokens, t)
	}
}

// Label returns the label the lexer was created with.
func (l *T) Label() string {
	return l.label
}

// Scan passes a text buffer to the lexer for scanning.
// The text is appended to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes += text
}

// Token returns the next scanned token, nil if there are no more tokens,
// or the error that stopped the scanner.
func (l *T) Token() (*token.T, error) {
	for len(l.queue) == 0 {
		if l.err != nil {
			return nil, l.err
		}

		if l.state == nil {
			if l.index >= len(l.bytes) {
				return nil, nil
			}

			l.state = skipWhitespace
		}

		l.state = l.state(l)
	}

	t := l.queue[0]
	l.queue = l.queue[1:]

	return t, nil
}

type action func(*T) action

const eof = -1

func (l *T) emit(c token.Class, v string) {
	l.queue = append(l.queue, token.New(c, v))
	l.skip()
}

func (l *T) errorf(format string, args ...interface{}) action {
	l.err = fmt.Errorf(format, args...)

	return nil
}

func (l *T) fail(err error) action {
	l.err = err

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.index += w

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
}

func (l *T) textOf() string {
	return l.bytes[l.first:l.index]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return r != eof && (unicode.IsLetter(r) || unicode.IsDigit(r) ||
		strings.ContainsRune("+-*/<>=!?_", r))
}

// T states.

func scanCharacter(l *T) action {
	if l.next() != '\\' {
		return l.errorf("Invalid character literal: expected '\\'")
	}

	l.skip()

	r, w := l.peek()
	if r == eof {
		return l.errorf("Invalid character literal: unexpected end of input")
	}

	if !unicode.IsLetter(r) {
		l.index += w
		l.emit(token.Character, string(r))

		return skipWhitespace
	}

	for r, w = l.peek(); unicode.IsLetter(r); r, w = l.peek() {
		l.index += w
	}

	s := l.textOf()
	if utf8.RuneCountInString(s) == 1 {
		l.emit(token.Character, s)

		return skipWhitespace
	}

	if c, ok := char.Names[s]; ok {
		l.emit(token.Character, string(c))

		return skipWhitespace
	}

	return l.errorf("Unknown character name: %s", s)
}

func scanComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func scanKeyword(l *T) action {
	l.skip()

	for r, w := l.peek(); isSymbol(r); r, w = l.peek() {
		l.index += w
	}

	if l.index == l.first {
		return l.errorf("Invalid keyword: empty name after ':'")
	}

	l.emit(token.Keyword, l.textOf())

	return skipWhitespace
}

func scanNumber(l *T) action {
	for r, w := l.peek(); isDigit(r); r, w = l.peek() {
		l.index += w
	}

	class := token.Integer

	switch r, w := l.peek(); r {
	case '.':
		l.index += w
		class = token.Float

		for r, w = l.peek(); isDigit(r); r, w = l.peek() {
			l.index += w
		}
	case '/':
		l.index += w

		return scanDenominator
	}

	s := l.textOf()

	var err error
	if class == token.Float {
		_, err = strconv.ParseFloat(s, 64)
	} else {
		_, err = strconv.ParseInt(s, 10, 64)
	}

	if err != nil {
		if class == token.Float {
			return l.errorf("Invalid float: %s", s)
		}

		return l.errorf("Invalid integer: %s", s)
	}

	l.emit(class, s)

	return skipWhitespace
}

func scanDenominator(l *T) action {
	start := l.index

	for r, w := l.peek(); isDigit(r); r, w = l.peek() {
		l.index += w
	}

	if l.index == start {
		return l.errorf("Invalid rational number")
	}

	s := l.textOf()
	n, d := s[:start-l.first-1], s[start-l.first:]

	if _, err := strconv.ParseInt(n, 10, 64); err != nil {
		return l.errorf("Invalid rational number")
	}

	v, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return l.errorf("Invalid rational number")
	}

	if v == 0 {
		return l.errorf("Denominator cannot be zero")
	}

	l.emit(token.Rational, s)

	return skipWhitespace
}

func scanString(l *T) action {
	l.text = l.text[:0]

	for {
		switch r := l.next(); r {
		case eof:
			return l.fail(ErrUnterminated)
		case '"':
			l.emit(token.String, string(l.text))

			return skipWhitespace
		case '\\':
			e := l.next()
			switch e {
			case eof:
				return l.fail(ErrUnterminated)
			case 'n':
				l.text = append(l.text, '\n')
			case 't':
				l.text = append(l.text, '\t')
			case 'r':
				l.text = append(l.text, '\r')
			case '\\', '"':
				l.text = append(l.text, e)
			default:
				l.text = append(l.text, '\\', e)
			}
		default:
			l.text = append(l.text, r)
		}
	}
}

func scanSymbol(l *T) action {
	for r, w := l.peek(); isSymbol(r); r, w = l.peek() {
		l.index += w
	}

	l.emit(token.Symbol, l.textOf())

	return skipWhitespace
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch {
		case r == eof:
			l.skip()

			return nil
		case unicode.IsSpace(r):
			l.skip()
		case r == ';':
			return scanComment
		case r == '(' || r == ')' || r == '[' || r == ']' || r == '\'':
			l.emit(token.Class(r), string(r))
		case r == '"':
			return scanString
		case r == '#':
			return scanCharacter
		case r == ':':
			return scanKeyword
		case isDigit(r):
			return scanNumber
		case r == '-':
			if p, _ := l.peek(); isDigit(p) {
				return scanNumber
			}

			return scanSymbol
		case isSymbol(r):
			return scanSymbol
		default:
			return l.errorf("Unexpected character: %q", r)
		}
	}
}
