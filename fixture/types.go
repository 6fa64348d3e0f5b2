package fixture

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"param-supplier/collection"
	"param-supplier/datetime"
	"param-supplier/primitive"
)

var ErrUnknownType = errors.New("unknown parameter type name")

var namedTypes = map[string]reflect.Type{
	"char":         reflect.TypeFor[primitive.Char](),
	"time":         reflect.TypeFor[time.Time](),
	"date":         reflect.TypeFor[datetime.Date](),
	"timestamp":    reflect.TypeFor[datetime.Timestamp](),
	"timeofday":    reflect.TypeFor[datetime.TimeOfDay](),
	"any":          reflect.TypeFor[any](),
	"map":          reflect.TypeFor[Row](),
	"set":          reflect.TypeFor[collection.Set](),
	"queue":        reflect.TypeFor[collection.Queue](),
	"list":         reflect.TypeFor[collection.List](),
	"collection":   reflect.TypeFor[collection.Collection](),
	"treeset":      reflect.TypeFor[*collection.TreeSet](),
	"hashset":      reflect.TypeFor[*collection.HashSet](),
	"deque":        reflect.TypeFor[*collection.Deque](),
	"boundedqueue": reflect.TypeFor[*collection.BoundedQueue](),
	"linkedlist":   reflect.TypeFor[*collection.LinkedList](),
	"arraylist":    reflect.TypeFor[*collection.ArrayList](),
}

func init() {
	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		switch t := kind.Type(); kind {
		case primitive.KindChar:
		case primitive.KindDuration:
			namedTypes["duration"] = t
		default:
			namedTypes[t.String()] = t
		}
	}
}

// TypeByName maps a declared type name to a Go type. Besides the built-in scalar names it knows
// char, time, date, timestamp, timeofday, any, map and the collection names, plus the composite
// forms "[]X" and "map[string]X". Names are case-insensitive.
func TypeByName(name string) (reflect.Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if elem, ok := strings.CutPrefix(name, "[]"); ok {
		t, err := TypeByName(elem)
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(t), nil
	}

	if elem, ok := strings.CutPrefix(name, "map[string]"); ok {
		t, err := TypeByName(elem)
		if err != nil {
			return nil, err
		}

		return reflect.MapOf(reflect.TypeFor[string](), t), nil
	}

	t, ok := namedTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return t, nil
}

// TypeNames returns every plain type name TypeByName accepts, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(namedTypes))
	for name := range namedTypes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Types resolves the declared type and element type of a parameter. Elem is nil when not declared.
func (p ParamDecl) Types() (t, elem reflect.Type, err error) {
	t, err = TypeByName(p.Type)
	if err != nil {
		return nil, nil, err
	}

	if p.Elem == "" {
		return t, nil, nil
	}

	elem, err = TypeByName(p.Elem)
	if err != nil {
		return nil, nil, err
	}

	return t, elem, nil
}
