// Released under an MIT license. See LICENSE.

// Package env provides the zeus environment: a stack of scopes that map
// names to values, a store of symbol properties and the gensym counter.
// There is one environment per session. It is not safe for concurrent use.
package env

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/type/list"
	"github.com/michaelmacinnis/zeus/internal/common/type/sym"
)

// T (env) holds the state of a zeus session.
type T struct {
	counter    int64
	properties map[string]*plist
	scopes     []map[string]cell.I
	serial     uint64
}

type env = T

type plist struct {
	names  []string
	values map[string]cell.I
}

// New creates an env with a single, base scope.
func New() *T {
	return &env{
		properties: map[string]*plist{},
		scopes:     []map[string]cell.I{{}},
	}
}

// Depth returns the number of scopes, including the base scope.
func (e *env) Depth() int {
	return len(e.scopes)
}

// Get returns the value bound to name in the innermost scope that binds it.
func (e *env) Get(name string) (cell.I, error) {
	if v, ok := e.Lookup(name); ok {
		return v, nil
	}

	return nil, fmt.Errorf("Undefined variable: %s", name) //nolint:stylecheck
}

// Gensym returns a new uninterned symbol named prefix followed by the
// counter. If reset is not nil the counter is set to *reset first.
// The counter is incremented after each symbol is made.
func (e *env) Gensym(prefix string, reset *int64) *sym.Uninterned {
	if reset != nil {
		e.counter = *reset
	}

	if prefix == "" {
		prefix = "G"
	}

	name := prefix + strconv.FormatInt(e.counter, 10)

	e.counter++
	e.serial++

	return sym.NewUninterned(name, e.serial)
}

// Lookup returns the value bound to name and true, if name is bound.
func (e *env) Lookup(name string) (cell.I, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Names returns every visible name in sorted order.
func (e *env) Names() []string {
	seen := map[string]bool{}

	for _, s := range e.scopes {
		for k := range s {
			seen[k] = true
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Plist returns the properties of symbol as a list of alternating
// keywords and values, in the order the properties were first set.
func (e *env) Plist(symbol string) cell.I {
	p, ok := e.properties[symbol]
	if !ok {
		return list.Null
	}

	elements := make([]cell.I, 0, 2*len(p.names)) //nolint:gomnd
	for _, k := range p.names {
		elements = append(elements, sym.NewKeyword(k), p.values[k])
	}

	return list.New(elements...)
}

// Pop removes the innermost scope. The base scope is never removed.
func (e *env) Pop() {
	if len(e.scopes) > 1 {
		e.scopes[len(e.scopes)-1] = nil
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Property returns the value of the property prop of symbol, or the
// empty list if it has not been set.
func (e *env) Property(symbol, prop string) cell.I {
	p, ok := e.properties[symbol]
	if !ok {
		return list.Null
	}

	v, ok := p.values[prop]
	if !ok {
		return list.Null
	}

	return v
}

// Push adds a new, empty innermost scope.
func (e *env) Push() {
	e.scopes = append(e.scopes, map[string]cell.I{})
}

// Set binds name to v in the innermost scope.
func (e *env) Set(name string, v cell.I) {
	e.scopes[len(e.scopes)-1][name] = v
}

// SetProperty sets the property prop of symbol to v.
func (e *env) SetProperty(symbol, prop string, v cell.I) {
	p, ok := e.properties[symbol]
	if !ok {
		p = &plist{values: map[string]cell.I{}}
		e.properties[symbol] = p
	}

	if _, ok := p.values[prop]; !ok {
		p.names = append(p.names, prop)
	}

	p.values[prop] = v
}
