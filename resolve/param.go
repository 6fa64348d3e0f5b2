package resolve

import "reflect"

// Param describes one parameter to resolve.
type Param struct {
	// Name is the row field to read. Empty means the simple name of the type, or of the
	// element type for collections.
	Name string
	Type reflect.Type
	// Elem is the element type of collection parameters. Nil means the slice element type,
	// or any.
	Elem reflect.Type
}

// ParamOf describes a parameter of type T.
func ParamOf[T any](name string) Param {
	return Param{Name: name, Type: reflect.TypeFor[T]()}
}

// CollectionOf describes a collection parameter of type T holding elements of type E.
func CollectionOf[T, E any](name string) Param {
	return Param{Name: name, Type: reflect.TypeFor[T](), Elem: reflect.TypeFor[E]()}
}

func (p Param) elem() reflect.Type {
	switch {
	case p.Elem != nil:
		return p.Elem
	case p.Type.Kind() == reflect.Slice:
		return p.Type.Elem()
	default:
		return anyType
	}
}

// lookup returns the field name for a value of type t.
func (p Param) lookup(t reflect.Type) string {
	if p.Name != "" {
		return p.Name
	}

	return simpleName(t)
}

func simpleName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
