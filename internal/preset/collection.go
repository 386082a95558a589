// Package preset stores named snapshots of the GNOME favorites list in a
// single JSON object on disk.
package preset

import (
	"errors"
	"iter"
	"maps"
	"slices"
)

var (
	// ErrNotFound is returned when a preset name is absent from the collection.
	ErrNotFound = errors.New("preset not found")
	// ErrMalformed is returned when the preset file is not a JSON object of strings.
	ErrMalformed = errors.New("malformed preset data")
)

// Collection maps preset names to favorites values. Values are opaque and
// round-tripped verbatim; names are unique by construction.
type Collection map[string]string

// Get returns the value stored under name.
func (c Collection) Get(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (c Collection) Set(name, value string) {
	c[name] = value
}

// Delete removes name, returning ErrNotFound if it was absent.
func (c Collection) Delete(name string) error {
	if _, ok := c[name]; !ok {
		return ErrNotFound
	}
	delete(c, name)
	return nil
}

// Len returns the number of presets.
func (c Collection) Len() int {
	return len(c)
}

// Names yields preset names in sorted order.
func (c Collection) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(c)))
}
