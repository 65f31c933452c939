// Released under an MIT license. See LICENSE.

// Package signal provides the non-local transfers of control used by
// catch/throw, block/return-from and tagbody/go. Each signal is an error
// that travels up the evaluator until a form that matches it stops it.
// A signal that reaches the top level reports itself as an error.
package signal

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

// Throw unwinds to the nearest catch with an equal tag.
type Throw struct {
	Tag   cell.I
	Value cell.I
}

func (t *Throw) Error() string {
	return "Uncaught throw for tag " + literal.String(t.Tag)
}

// ReturnFrom unwinds to the nearest enclosing block with the same name.
type ReturnFrom struct {
	Block string
	Value cell.I
}

func (r *ReturnFrom) Error() string {
	return "Unhandled return-from for block " + r.Block
}

// Go transfers control to a label in the nearest tagbody that has it.
type Go struct {
	Label string
}

func (g *Go) Error() string {
	return "Unhandled go to label " + g.Label
}
