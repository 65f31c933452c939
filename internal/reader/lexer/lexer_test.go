package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/zeus/internal/common/struct/token"
)

func TestBrackets(t *testing.T) {
	h := setup(t, "Brackets")

	h.scan("([ ]) '(a)",
		h.literal('('),
		h.literal('['),
		h.literal(']'),
		h.literal(')'),
		h.literal('\''),
		h.literal('('),
		h.symbol("a"),
		h.literal(')'),
	)
}

func TestCharacters(t *testing.T) {
	h := setup(t, "Characters")

	h.scan(`#\a #\Z #\space #\newline #\tab #\return #\(`,
		h.other(token.Character, "a"),
		h.other(token.Character, "Z"),
		h.other(token.Character, " "),
		h.other(token.Character, "\n"),
		h.other(token.Character, "\t"),
		h.other(token.Character, "\r"),
		h.other(token.Character, "("),
	)
}

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("; leading\n(a ; trailing\n b) ; last",
		h.literal('('),
		h.symbol("a"),
		h.symbol("b"),
		h.literal(')'),
	)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		input   string
		message string
	}{
		{`"abc`, "Unterminated string"},
		{`"abc\`, "Unterminated string"},
		{`#\foo`, "Unknown character name: foo"},
		{`#a`, `Invalid character literal: expected '\'`},
		{`#\`, "Invalid character literal: unexpected end of input"},
		{`: x`, "Invalid keyword: empty name after ':'"},
		{`1/`, "Invalid rational number"},
		{`1/0`, "Denominator cannot be zero"},
		{`99999999999999999999`, "Invalid integer: 99999999999999999999"},
		{`a.b`, "Unexpected character: '.'"},
		{`{`, "Unexpected character: '{'"},
	} {
		_, err := All("test", tc.input)
		if assert.Error(t, err, tc.input) {
			assert.Equal(t, tc.message, err.Error(), tc.input)
		}
	}
}

func TestKeywords(t *testing.T) {
	h := setup(t, "Keywords")

	h.scan(":test :a-b?",
		h.other(token.Keyword, "test"),
		h.other(token.Keyword, "a-b?"),
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t, "Numbers")

	h.scan("42 -7 3.25 -0.5 1. 1/2 -3/4 12abc",
		h.other(token.Integer, "42"),
		h.other(token.Integer, "-7"),
		h.other(token.Float, "3.25"),
		h.other(token.Float, "-0.5"),
		h.other(token.Float, "1."),
		h.other(token.Rational, "1/2"),
		h.other(token.Rational, "-3/4"),
		h.other(token.Integer, "12"),
		h.symbol("abc"),
	)
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"plain" "a\nb\tc\r" "q\"q" "back\\slash" "keep\x"`,
		h.other(token.String, "plain"),
		h.other(token.String, "a\nb\tc\r"),
		h.other(token.String, `q"q`),
		h.other(token.String, `back\slash`),
		h.other(token.String, `keep\x`),
	)
}

func TestSymbols(t *testing.T) {
	h := setup(t, "Symbols")

	h.scan("+ - foo-bar vector-set! <= x1 _ 5+",
		h.symbol("+"),
		h.symbol("-"),
		h.symbol("foo-bar"),
		h.symbol("vector-set!"),
		h.symbol("<="),
		h.symbol("x1"),
		h.symbol("_"),
		h.other(token.Integer, "5"),
		h.symbol("+"),
	)
}

func TestIncrementalScan(t *testing.T) {
	l := New("IncrementalScan")

	l.Scan("(a")

	for _, expected := range []string{"(", "a"} {
		tk, err := l.Token()
		require.NoError(t, err)
		require.NotNil(t, tk)
		assert.Equal(t, expected, tk.Value())
	}

	tk, err := l.Token()
	require.NoError(t, err)
	assert.Nil(t, tk)

	l.Scan(" b)")

	for _, expected := range []string{"b", ")"} {
		tk, err := l.Token()
		require.NoError(t, err)
		require.NotNil(t, tk)
		assert.Equal(t, expected, tk.Value())
	}
}

type harness struct {
	*testing.T
	lexer *T
}

func setup(t *testing.T, label string) *harness {
	t.Helper()

	return &harness{T: t, lexer: New(label)}
}

func (h *harness) expect(tokens ...*token.T) {
	h.Helper()

	for _, e := range tokens {
		a, err := h.lexer.Token()
		require.NoError(h.T, err)
		require.NotNil(h.T, a, "expected %v but there are no tokens", e)
		assert.Equal(h.T, e.String(), a.String())
	}

	a, err := h.lexer.Token()
	require.NoError(h.T, err)
	assert.Nil(h.T, a, "expected no more tokens")
}

func (h *harness) literal(r rune) *token.T {
	return token.New(token.Class(r), string(r))
}

func (h *harness) other(class token.Class, s string) *token.T {
	return token.New(class, s)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) symbol(s string) *token.T {
	return token.New(token.Symbol, s)
}
