package collection

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// TreeSet keeps distinct values in ascending order. Values comparing equal are duplicates.
type TreeSet struct {
	items []any
}

func NewTreeSet() *TreeSet { return &TreeSet{} }

func (s *TreeSet) search(v any) (int, bool) {
	i := sort.Search(len(s.items), func(i int) bool { return compare(s.items[i], v) >= 0 })
	return i, i < len(s.items) && compare(s.items[i], v) == 0
}

func (s *TreeSet) Add(v any) error {
	i, found := s.search(v)
	if !found {
		s.items = slices.Insert(s.items, i, v)
	}

	return nil
}

func (s *TreeSet) Contains(v any) bool {
	_, found := s.search(v)
	return found
}

func (s *TreeSet) Len() int      { return len(s.items) }
func (s *TreeSet) Values() []any { return slices.Clone(s.items) }

// HashSet keeps distinct values in insertion order.
type HashSet struct {
	seen  map[any]struct{}
	items []any
}

func NewHashSet() *HashSet { return &HashSet{seen: map[any]struct{}{}} }

func hashKey(v any) any {
	if v == nil || reflect.TypeOf(v).Comparable() {
		return v
	}

	return fmt.Sprintf("%T:%v", v, v)
}

func (s *HashSet) Add(v any) error {
	k := hashKey(v)
	if _, ok := s.seen[k]; !ok {
		s.seen[k] = struct{}{}
		s.items = append(s.items, v)
	}

	return nil
}

func (s *HashSet) Contains(v any) bool {
	_, ok := s.seen[hashKey(v)]
	return ok
}

func (s *HashSet) Len() int      { return len(s.items) }
func (s *HashSet) Values() []any { return slices.Clone(s.items) }

// EnumSet holds values of a single enumeration type (a named integer or string type),
// ordered by their underlying value.
type EnumSet struct {
	elem reflect.Type
	set  TreeSet
}

// NewEnumSet returns an empty set for the given enumeration type.
func NewEnumSet(elem reflect.Type) (*EnumSet, error) {
	if elem == nil || elem.Name() == "" || elem.PkgPath() == "" {
		return nil, fmt.Errorf("%w: enum set needs a named element type, got %v", ErrInstantiation, elem)
	}

	switch numberClass(elem.Kind()) {
	case classInt, classUint:
	default:
		if elem.Kind() != reflect.String {
			return nil, fmt.Errorf("%w: %s is not an enumeration type", ErrInstantiation, elem)
		}
	}

	return &EnumSet{elem: elem}, nil
}

func (s *EnumSet) Elem() reflect.Type { return s.elem }

func (s *EnumSet) Add(v any) error {
	if reflect.TypeOf(v) != s.elem {
		return fmt.Errorf("%w: %T is not %s", ErrElementType, v, s.elem)
	}

	return s.set.Add(v)
}

func (s *EnumSet) Contains(v any) bool {
	return reflect.TypeOf(v) == s.elem && s.set.Contains(v)
}

func (s *EnumSet) Len() int      { return s.set.Len() }
func (s *EnumSet) Values() []any { return s.set.Values() }
