package jsonschema

import (
	"errors"
	"fmt"
)

// ErrDefinitionConflict is returned when two different schemas are
// registered under one definition name.
var ErrDefinitionConflict = errors.New("jsonschema: conflicting definition")

// Definitions collects the named definitions shared by one document.
// A model is rendered once; later references reuse its entry.
type Definitions struct {
	entries map[string]*defEntry
}

type defEntry struct {
	owner  any
	schema *Schema
}

// NewDefinitions returns an empty definition set.
func NewDefinitions() *Definitions {
	return &Definitions{entries: map[string]*defEntry{}}
}

// RefTo returns the reference schema for a definition name.
func RefTo(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Add registers the definition name for owner, rendering it with build when
// it is new, and returns a reference to it. owner identifies the declaration
// (usually the built model): adding the same owner twice is a no-op. A
// different owner is accepted when it renders the same content; otherwise
// Add returns ErrDefinitionConflict. The entry is reserved before build runs,
// so self-referencing models terminate.
func (d *Definitions) Add(name string, owner any, build func(*Definitions) (*Schema, error)) (*Schema, error) {
	if e, ok := d.entries[name]; ok {
		if e.owner == owner {
			return RefTo(name), nil
		}
		other, err := build(d)
		if err != nil {
			return nil, err
		}
		if e.schema != nil && !Equal(e.schema, other) {
			return nil, fmt.Errorf("%w: %q", ErrDefinitionConflict, name)
		}
		return RefTo(name), nil
	}
	e := &defEntry{owner: owner}
	d.entries[name] = e
	s, err := build(d)
	if err != nil {
		delete(d.entries, name)
		return nil, err
	}
	e.schema = s
	return RefTo(name), nil
}

// Len reports the number of registered definitions.
func (d *Definitions) Len() int { return len(d.entries) }

// Get returns the rendered definition for name.
func (d *Definitions) Get(name string) (*Schema, bool) {
	e, ok := d.entries[name]
	if !ok || e.schema == nil {
		return nil, false
	}
	return e.schema, true
}

// Map returns the definitions as a $defs map, or nil when empty.
func (d *Definitions) Map() map[string]*Schema {
	if len(d.entries) == 0 {
		return nil
	}
	out := make(map[string]*Schema, len(d.entries))
	for k, e := range d.entries {
		if e.schema != nil {
			out[k] = e.schema
		}
	}
	return out
}
