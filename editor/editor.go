// Package editor is the scalar coercion registry: it maps a target type to the function turning
// one field's text into a value of that type.
package editor

import (
	"encoding"
	"reflect"
	"slices"
	"strings"
	"sync"

	"param-supplier/primitive"
)

// Func converts field text to a value. A nil value with a nil error means the text carries
// no value.
type Func func(text string) (any, error)

// Registry maps exact target types to editors. It is safe for concurrent use; writes are
// expected during setup.
type Registry struct {
	mu      sync.RWMutex
	editors map[reflect.Type]Func
}

// New returns a registry with editors for every number kind, bool, primitive.Char and
// time.Duration.
func New() *Registry {
	r := NewEmpty()

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		if kind == primitive.KindString {
			continue
		}

		r.editors[kind.Type()] = func(text string) (any, error) {
			return primitive.Parse(kind, text)
		}
	}

	return r
}

// NewEmpty returns a registry without any editor.
func NewEmpty() *Registry {
	return &Registry{editors: map[reflect.Type]Func{}}
}

// Register sets the editor of t, replacing any previous one.
func (r *Registry) Register(t reflect.Type, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.editors[t] = fn
}

// Find returns the editor registered for exactly t.
func (r *Registry) Find(t reflect.Type) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.editors[t]

	return fn, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.editors)
}

// Types returns the registered types ordered by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.editors))
	for t := range r.editors {
		types = append(types, t)
	}
	r.mu.RUnlock()

	slices.SortFunc(types, func(a, b reflect.Type) int { return strings.Compare(a.String(), b.String()) })

	return types
}

// Register sets a typed editor for T.
func Register[T any](r *Registry, fn func(text string) (T, error)) {
	r.Register(reflect.TypeFor[T](), func(text string) (any, error) {
		v, err := fn(text)
		if err != nil {
			return nil, err
		}

		return v, nil
	})
}

// RegisterUnmarshaler sets an editor for T decoding text through (*T).UnmarshalText.
// Blank text carries no value.
func RegisterUnmarshaler[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](r *Registry) {
	r.Register(reflect.TypeFor[T](), func(text string) (any, error) {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}

		var v T
		if err := PT(&v).UnmarshalText([]byte(text)); err != nil {
			return nil, err
		}

		return v, nil
	})
}
