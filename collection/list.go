package collection

import (
	"container/list"
	"fmt"
	"reflect"
	"slices"
)

// LinkedList is a doubly linked list.
type LinkedList struct {
	l list.List
}

func NewLinkedList() *LinkedList { return &LinkedList{} }

func (l *LinkedList) Add(v any) error {
	l.l.PushBack(v)
	return nil
}

func (l *LinkedList) Get(i int) (any, bool) {
	if i < 0 || i >= l.l.Len() {
		return nil, false
	}

	e := l.l.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}

	return e.Value, true
}

func (l *LinkedList) Len() int { return l.l.Len() }

func (l *LinkedList) Values() []any {
	values := make([]any, 0, l.l.Len())
	for e := l.l.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value)
	}

	return values
}

// ArrayList is a resizable array.
type ArrayList struct {
	items []any
}

func NewArrayList() *ArrayList { return &ArrayList{} }

func (a *ArrayList) Add(v any) error {
	a.items = append(a.items, v)
	return nil
}

func (a *ArrayList) Get(i int) (any, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}

	return a.items[i], true
}

func (a *ArrayList) Len() int      { return len(a.items) }
func (a *ArrayList) Values() []any { return slices.Clone(a.items) }

// Slice fills a native slice of a fixed type. Value returns the typed slice.
type Slice struct {
	v reflect.Value
}

// NewSlice returns an empty, non-nil slice of type t.
func NewSlice(t reflect.Type) (*Slice, error) {
	if t == nil || t.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %v is not a slice type", ErrInstantiation, t)
	}

	return &Slice{v: reflect.MakeSlice(t, 0, 0)}, nil
}

// Add appends v when it is assignable to the element type, or has the same underlying kind.
func (s *Slice) Add(v any) error {
	elem := s.v.Type().Elem()
	val := reflect.ValueOf(v)

	switch {
	case !val.IsValid():
		val = reflect.Zero(elem)
	case val.Type().AssignableTo(elem):
	case val.Kind() == elem.Kind() && val.Type().ConvertibleTo(elem):
		val = val.Convert(elem)
	default:
		return fmt.Errorf("%w: %T is not %s", ErrElementType, v, elem)
	}

	s.v = reflect.Append(s.v, val)

	return nil
}

func (s *Slice) Get(i int) (any, bool) {
	if i < 0 || i >= s.v.Len() {
		return nil, false
	}

	return s.v.Index(i).Interface(), true
}

func (s *Slice) Len() int { return s.v.Len() }

func (s *Slice) Values() []any {
	values := make([]any, s.v.Len())
	for i := range values {
		values[i] = s.v.Index(i).Interface()
	}

	return values
}

func (s *Slice) Value() any { return s.v.Interface() }
