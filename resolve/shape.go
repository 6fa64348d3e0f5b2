package resolve

import (
	"reflect"

	"param-supplier/collection"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the resolution path a parameter type takes.
type Shape int

const (
	_ Shape = iota // skip zero value, nil types have no shape

	ShapeMap
	ShapeCollection
	ShapeScalar
)

// Classify picks the shape of a declared type: maps first, then native slices and
// collection.Collection implementations, then scalars.
func Classify(t reflect.Type) Shape {
	switch {
	case t == nil:
		return 0
	case t.Kind() == reflect.Map:
		return ShapeMap
	case collection.IsCollection(t):
		return ShapeCollection
	default:
		return ShapeScalar
	}
}
