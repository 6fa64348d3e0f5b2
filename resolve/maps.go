package resolve

import (
	"fmt"
	"reflect"

	"param-supplier/diagnostic"
	"param-supplier/fixture"
)

var (
	rowType     = reflect.TypeFor[fixture.Row]()
	genericType = reflect.TypeFor[map[string]any]()
)

// maps hands every row over whole. fixture.Row and map[string]any get the row itself, any
// other map type a new map holding the row entries.
func (r *resolution) maps() ([]any, error) {
	t := r.p.Type
	out := make([]any, len(r.rows))

	switch t {
	case rowType:
		for i, row := range r.rows {
			out[i] = row
		}

		return out, nil

	case genericType:
		for i, row := range r.rows {
			out[i] = map[string]any(row)
		}

		return out, nil
	}

	if t.Key().Kind() != reflect.String {
		return nil, &Error{Kind: ErrInstantiation, Type: t, Row: -1, Err: fmt.Errorf("key type %s is not a string kind", t.Key())}
	}

	r.diags.AddInfo(diagnostic.CodeStrategy, "rows copied into a new map", t.String(), "", diagnostic.NoRow)

	for i, row := range r.rows {
		m := reflect.MakeMapWithSize(t, len(row))

		for _, name := range row.Names() {
			v, err := r.mapValue(t.Elem(), row[name])
			if err != nil {
				return nil, &Error{Kind: ErrInstantiation, Type: t, Field: name, Row: i, Err: err}
			}

			m.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), v)
		}

		out[i] = m.Interface()
	}

	return out, nil
}

// mapValue fits a row entry into the map element type: assigned, converted within its kind,
// coerced by the element editor, or formatted for string kinds.
func (r *resolution) mapValue(elem reflect.Type, raw any) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(elem), nil
	}

	rv := reflect.ValueOf(raw)

	switch {
	case rv.Type().AssignableTo(elem):
		return rv, nil
	case rv.Kind() == elem.Kind() && rv.Type().ConvertibleTo(elem):
		return rv.Convert(elem), nil
	}

	if fn, ok := r.editors.Find(elem); ok {
		v, err := fn(fmt.Sprint(raw))
		if err != nil {
			return reflect.Value{}, err
		}

		if v == nil {
			return reflect.Zero(elem), nil
		}

		if ev := reflect.ValueOf(v); ev.Type().AssignableTo(elem) {
			return ev, nil
		}
	}

	if elem.Kind() == reflect.String {
		return reflect.ValueOf(fmt.Sprint(raw)).Convert(elem), nil
	}

	return reflect.Value{}, fmt.Errorf("%T value does not fit %s", raw, elem)
}
