// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating zeus types.
package create

import (
	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
)

// Bool returns the zeus value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return list.Null
}
