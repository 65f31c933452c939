// Released under an MIT license. See LICENSE.

// Package commands provides the builtin functions of zeus.
package commands

import (
	"io"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/engine/env"
)

// Context is what a builtin can see of the evaluator calling it.
type Context interface {
	Apply(fn cell.I, args []cell.I) (cell.I, error)
	Env() *env.T
	IsFunction(c cell.I) bool
	Output() io.Writer
}

// Function is a builtin. It receives its arguments already evaluated.
type Function func(ctx Context, args []cell.I) (cell.I, error)

// Functions returns every builtin, by name.
func Functions() map[string]Function {
	return map[string]Function{
		"*":                  mul,
		"+":                  add,
		"-":                  sub,
		"/":                  div,
		"/=":                 ne,
		"<":                  lt,
		"<=":                 le,
		"=":                  eq,
		">":                  gt,
		">=":                 ge,
		"append":             appendLists,
		"apply":              apply,
		"car":                car,
		"cdr":                cdr,
		"char->integer":      charToInteger,
		"char-downcase":      charDowncase,
		"char-upcase":        charUpcase,
		"char<":              charLt,
		"char=":              charEq,
		"char>":              charGt,
		"characterp":         isCharacter,
		"cons":               cons,
		"consp":              isCons,
		"equal":              equal,
		"filter":             filter,
		"floatp":             isFloat,
		"format":             format,
		"funcall":            funcall,
		"functionp":          isFunction,
		"gensym":             gensym,
		"get":                get,
		"hash-count":         hashCount,
		"hash-keys":          hashKeys,
		"hash-ref":           hashRef,
		"hash-remove!":       hashRemove,
		"hash-set!":          hashSet,
		"hash-table-p":       isHashTable,
		"hash-values":        hashValues,
		"integer->char":      integerToChar,
		"integerp":           isInteger,
		"keywordp":           isKeyword,
		"length":             length,
		"list":               makeList,
		"list->vector":       listToVector,
		"listp":              isList,
		"make-hash-table":    makeHashTable,
		"make-vector":        makeVector,
		"mapcar":             mapcar,
		"member":             member,
		"mod":                mod,
		"not":                not,
		"nth":                nth,
		"nthcdr":             nthcdr,
		"null":               not,
		"number->string":     numberToString,
		"numberp":            isNumber,
		"print":              display,
		"println":            displayLines,
		"put":                put,
		"rationalp":          isRational,
		"reduce":             reduce,
		"remove":             remove,
		"reverse":            reverse,
		"string->symbol":     stringToSymbol,
		"string-append":      stringAppend,
		"string-downcase":    stringDowncase,
		"string-join":        stringJoin,
		"string-length":      stringLength,
		"string-match":       match,
		"string-replace":     stringReplace,
		"string-split":       stringSplit,
		"string-trim-prefix": stringTrimPrefix,
		"string-trim-suffix": stringTrimSuffix,
		"string-upcase":      stringUpcase,
		"stringp":            isString,
		"substring":          substring,
		"symbol-name":        symbolName,
		"symbol-plist":       symbolPlist,
		"symbolp":            isSymbol,
		"vector":             makeVectorOf,
		"vector->list":       vectorToList,
		"vector-length":      vectorLength,
		"vector-ref":         vectorRef,
		"vector-set!":        vectorSet,
		"vectorp":            isVector,
	}
}
