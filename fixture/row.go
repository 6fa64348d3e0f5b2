package fixture

import (
	"fmt"
	"slices"
)

// Row is one set of named field values feeding a single test invocation.
type Row map[string]any

// Get returns the raw value of a field. A field holding nil is reported as absent.
func (r Row) Get(name string) (any, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Text returns the textual form of a field, or false if the field is absent.
func (r Row) Text(name string) (string, bool) {
	v, ok := r.Get(name)
	if !ok {
		return "", false
	}

	if s, ok := v.(string); ok {
		return s, true
	}

	return fmt.Sprint(v), true
}

// Names returns the field names in sorted order.
func (r Row) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Set maps a test method identifier to its ordered rows.
type Set map[string][]Row

// Rows returns the rows of a method; false if the method has none.
func (s Set) Rows(method string) ([]Row, bool) {
	rows, ok := s[method]
	if !ok || len(rows) == 0 {
		return nil, false
	}

	return rows, true
}

// Methods returns the method identifiers in sorted order.
func (s Set) Methods() []string {
	methods := make([]string, 0, len(s))
	for m := range s {
		methods = append(methods, m)
	}

	slices.Sort(methods)

	return methods
}
