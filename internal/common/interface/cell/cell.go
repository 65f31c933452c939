// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all zeus types.
package cell

// I (cell) is the basic unit of storage in zeus. Everything the reader
// produces and everything the evaluator returns is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
