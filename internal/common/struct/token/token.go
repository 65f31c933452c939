// Released under an MIT license. See LICENSE.

// Package token is shared by the zeus lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	value string
}

type token = T

// Token classes. Brackets use their own rune as their class.
const (
	Error Class = iota

	Character Class = unicode.MaxRune + iota
	Float
	Integer
	Keyword
	Rational
	String
	Symbol
)

// New creates a new token.
func New(class Class, value string) *token {
	return &token{
		class: class,
		value: value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Character:
		return "Character"
	case Float:
		return "Float"
	case Integer:
		return "Integer"
	case Keyword:
		return "Keyword"
	case Rational:
		return "Rational"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.class.String() + ")"
}

// Value returns the token's value. For strings and characters this is
// the decoded text. For keywords it is the name without the colon.
func (t *token) Value() string {
	return t.value
}
