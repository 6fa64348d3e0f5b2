package collection

import (
	"errors"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

var (
	ErrInstantiation = errors.New("cannot instantiate collection")
	ErrFull          = errors.New("queue full")
	ErrElementType   = errors.New("element does not match the element type")
)

// Collection is a mutable group of values.
type Collection interface {
	Add(v any) error
	Len() int
	Values() []any
}

// Set holds each value at most once.
type Set interface {
	Collection
	Contains(v any) bool
}

// Queue hands values out in insertion order.
type Queue interface {
	Collection
	Offer(v any) bool
	Poll() (any, bool)
	Peek() (any, bool)
}

// List is an indexed sequence.
type List interface {
	Collection
	Get(i int) (any, bool)
}

// Valuer is implemented by containers whose resolved value is not the container itself.
type Valuer interface {
	Value() any
}

type KindEnum int

const (
	_ KindEnum = iota // not a collection

	KindSet
	KindQueue
	KindList
	KindCollection

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	collectionType = reflect.TypeFor[Collection]()
	setType        = reflect.TypeFor[Set]()
	queueType      = reflect.TypeFor[Queue]()
	listType       = reflect.TypeFor[List]()
)

// Kind classifies a type by the most specific abstraction it satisfies.
// Native slices are lists.
func Kind(t reflect.Type) KindEnum {
	switch {
	case t == nil:
		return 0
	case t.Kind() == reflect.Slice:
		return KindList
	case t.Implements(setType):
		return KindSet
	case t.Implements(queueType):
		return KindQueue
	case t.Implements(listType):
		return KindList
	case t.Implements(collectionType):
		return KindCollection
	default:
		return 0
	}
}

// IsCollection reports whether t is a native slice or satisfies Collection.
func IsCollection(t reflect.Type) bool {
	return Kind(t) != 0
}
