package collection

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Factory builds an empty container for the given element type.
type Factory func(elem reflect.Type) (Collection, error)

// Factories picks the container built for a requested type. It is safe for concurrent use;
// registrations are expected during setup.
type Factories struct {
	mu       sync.RWMutex
	concrete map[reflect.Type]Factory
	defaults map[KindEnum]Factory
}

// NewFactories returns factories for every container of this package. Bounded queues get the
// given capacity.
func NewFactories(queueCapacity int) *Factories {
	f := &Factories{
		concrete: map[reflect.Type]Factory{},
		defaults: map[KindEnum]Factory{},
	}

	treeSet := func(reflect.Type) (Collection, error) { return NewTreeSet(), nil }
	deque := func(reflect.Type) (Collection, error) { return NewDeque(), nil }
	linkedList := func(reflect.Type) (Collection, error) { return NewLinkedList(), nil }
	arrayList := func(reflect.Type) (Collection, error) { return NewArrayList(), nil }

	f.defaults[KindSet] = treeSet
	f.defaults[KindQueue] = deque
	f.defaults[KindList] = linkedList
	f.defaults[KindCollection] = arrayList

	f.concrete[reflect.TypeFor[*TreeSet]()] = treeSet
	f.concrete[reflect.TypeFor[*HashSet]()] = func(reflect.Type) (Collection, error) { return NewHashSet(), nil }
	f.concrete[reflect.TypeFor[*EnumSet]()] = func(elem reflect.Type) (Collection, error) { return NewEnumSet(elem) }
	f.concrete[reflect.TypeFor[*BoundedQueue]()] = func(reflect.Type) (Collection, error) {
		return NewBoundedQueue(queueCapacity), nil
	}
	f.concrete[reflect.TypeFor[*Deque]()] = deque
	f.concrete[reflect.TypeFor[*LinkedList]()] = linkedList
	f.concrete[reflect.TypeFor[*ArrayList]()] = arrayList

	return f
}

// Register sets the factory of a concrete container type.
func (f *Factories) Register(t reflect.Type, fn Factory) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.concrete[t] = fn
}

// RegisterDefault sets the factory used for interfaces of the given kind.
func (f *Factories) RegisterDefault(kind KindEnum, fn Factory) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.defaults[kind] = fn
}

// Instantiate builds an empty container for the requested type. The result always satisfies
// the requested type; anything else fails with ErrInstantiation.
func (f *Factories) Instantiate(requested, elem reflect.Type) (Collection, error) {
	if requested != nil && requested.Kind() == reflect.Slice {
		return NewSlice(requested)
	}

	kind := Kind(requested)
	if kind == 0 {
		return nil, fmt.Errorf("%w: %v is not a collection type", ErrInstantiation, requested)
	}

	f.mu.RLock()
	fn, ok := f.concrete[requested]
	if !ok {
		fn = f.defaults[kind]
	}
	f.mu.RUnlock()

	if fn == nil {
		return nil, fmt.Errorf("%w: no factory for %s (%s)", ErrInstantiation, requested, kind)
	}

	c, err := fn(elem)
	if err != nil {
		if errors.Is(err, ErrInstantiation) {
			return nil, fmt.Errorf("%s: %w", requested, err)
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrInstantiation, requested, err)
	}

	if c == nil || !reflect.TypeOf(c).AssignableTo(requested) {
		return nil, fmt.Errorf("%w: no factory for %s, the %s default builds %T", ErrInstantiation, requested, kind, c)
	}

	return c, nil
}
