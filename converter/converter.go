// Package converter is the pluggable converter registry: it maps a target type to a function
// building a value from a whole fixture row. Converters serve types whose construction needs
// several fields, where an editor sees only one field's text.
package converter

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	"param-supplier/fixture"
)

// Func builds a value from a row. A nil value with a nil error means the row carries no value.
type Func func(row fixture.Row) (any, error)

// Registry maps exact target types to converters. It is safe for concurrent use; writes are
// expected during setup.
type Registry struct {
	mu         sync.RWMutex
	converters map[reflect.Type]Func
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{converters: map[reflect.Type]Func{}}
}

// Register sets the converter of t, replacing any previous one.
func (r *Registry) Register(t reflect.Type, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters[t] = fn
}

// Find returns the converter registered for exactly t.
func (r *Registry) Find(t reflect.Type) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.converters[t]

	return fn, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.converters)
}

// Types returns the registered types ordered by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.converters))
	for t := range r.converters {
		types = append(types, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(types, func(a, b reflect.Type) int { return strings.Compare(a.String(), b.String()) })

	return types
}

// Register sets a typed converter for T.
func Register[T any](r *Registry, fn func(row fixture.Row) (T, error)) {
	r.Register(reflect.TypeFor[T](), func(row fixture.Row) (any, error) {
		v, err := fn(row)
		if err != nil {
			return nil, err
		}

		return v, nil
	})
}
