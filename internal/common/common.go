// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the display string for a cell. Types without a distinct
// display form are shown as their literal.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		return literal.String(c)
	}

	return b.String()
}
