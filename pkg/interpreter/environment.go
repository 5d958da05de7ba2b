package interpreter

import (
	"sort"
	"strings"

	"github.com/sargas/spi/pkg/runtime"
	"github.com/sargas/spi/pkg/token"
)

// Environment maps variable names to their last-assigned values. Names are
// case-insensitive, matching Pascal identifier rules. One environment lives
// for exactly one interpretation run.
type Environment struct {
	values map[string]runtime.Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: map[string]runtime.Value{}}
}

// Set binds name to value, overwriting any previous binding.
func (e *Environment) Set(name string, value runtime.Value) {
	e.values[strings.ToUpper(name)] = value
}

// Get returns the value bound to name. Reading an unassigned variable is a
// NameError, never a default value.
func (e *Environment) Get(name string, pos token.Position) (runtime.Value, error) {
	value, ok := e.values[strings.ToUpper(name)]
	if !ok {
		return nil, &NameError{Name: strings.ToUpper(name), Pos: pos}
	}
	return value, nil
}

// Names returns the bound variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot copies the current bindings for inspection after a run.
func (e *Environment) Snapshot() map[string]runtime.Value {
	out := make(map[string]runtime.Value, len(e.values))
	for name, value := range e.values {
		out[name] = value
	}
	return out
}
