package resolve

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"param-supplier/collection"
	"param-supplier/converter"
	"param-supplier/diagnostic"
	"param-supplier/editor"
	"param-supplier/fixture"
	"param-supplier/internal/match"
)

type strategyEnum int

const (
	strategyEditor strategyEnum = iota + 1
	strategyConverter
	strategyFallback
)

func (s strategyEnum) String() string {
	switch s {
	case strategyEditor:
		return "editor"
	case strategyConverter:
		return "converter"
	case strategyFallback:
		return "fallback"
	default:
		return "none"
	}
}

// strategy is how values of one type are produced, picked once per resolution.
type strategy struct {
	kind    strategyEnum
	edit    editor.Func
	convert converter.Func
}

// strategyFor picks editor, else converter, else fallback.
func (e *Engine) strategyFor(t reflect.Type) (strategy, error) {
	if fn, ok := e.editors.Find(t); ok {
		return strategy{kind: strategyEditor, edit: fn}, nil
	}

	if fn, ok := e.converters.Find(t); ok {
		return strategy{kind: strategyConverter, convert: fn}, nil
	}

	if e.hasFallback(t) {
		return strategy{kind: strategyFallback}, nil
	}

	return strategy{}, fault(ErrUnresolvableType, "no editor, converter or fallback rule")
}

// value applies s to one field. raw is the field value, row what a converter sees.
func (e *Engine) value(s strategy, t reflect.Type, raw any, row fixture.Row) (any, error) {
	switch s.kind {
	case strategyEditor:
		if raw == nil {
			return nil, nil
		}

		text, ok := raw.(string)
		if !ok {
			text = fmt.Sprint(raw)
		}

		if text == "" {
			return nil, nil
		}

		return s.edit(text)

	case strategyConverter:
		return s.convert(row)

	default:
		return e.fallback(t, raw)
	}
}

// resolution is the state of one Resolve call.
type resolution struct {
	*Engine

	p     Param
	rows  []fixture.Row
	diags diagnostic.Diagnostics
}

func (r *resolution) run() ([]any, error) {
	if r.p.Type == nil {
		return nil, &Error{Kind: ErrUnresolvableType, Field: r.p.Name, Row: -1, Err: errors.New("parameter has no type")}
	}

	if len(r.rows) == 0 {
		return nil, &Error{Kind: ErrMissingData, Type: r.p.Type, Field: r.p.Name, Row: -1, Err: errNoRows}
	}

	shape := Classify(r.p.Type)
	r.logger.Debug("resolving parameter", "type", r.p.Type, "name", r.p.Name, "shape", shape, "rows", len(r.rows))

	switch shape {
	case ShapeMap:
		return r.maps()
	case ShapeCollection:
		return r.collections()
	default:
		return r.scalars()
	}
}

func (r *resolution) scalars() ([]any, error) {
	t := r.p.Type
	name := r.p.lookup(t)

	s, err := r.strategyFor(t)
	if err != nil {
		return nil, locate(err, ErrUnresolvableType, t, name, -1)
	}

	r.logger.Debug("scalar strategy", "type", t, "field", name, "strategy", s.kind)
	r.diags.AddInfo(diagnostic.CodeStrategy, "resolved by "+s.kind.String(), t.String(), name, diagnostic.NoRow)

	out := make([]any, len(r.rows))

	for i, row := range r.rows {
		var raw any
		if s.kind != strategyConverter {
			raw = r.field(row, i, name)
		}

		v, err := r.value(s, t, raw, row)
		if err != nil {
			return nil, locate(err, ErrMalformedField, t, name, i)
		}

		if v == nil && raw != nil {
			r.diags.AddInfo(diagnostic.CodeNoValue, s.kind.String()+" produced no value", t.String(), name, i)
		}

		out[i] = v
	}

	return out, nil
}

func (r *resolution) collections() ([]any, error) {
	t := r.p.Type
	elem := r.p.elem()
	name := r.p.lookup(elem)

	s, err := r.strategyFor(elem)
	if err != nil {
		return nil, locate(err, ErrUnresolvableType, elem, name, -1)
	}

	r.logger.Debug("collection strategy", "type", t, "elem", elem, "field", name, "strategy", s.kind)
	r.diags.AddInfo(diagnostic.CodeStrategy, "elements resolved by "+s.kind.String(), t.String(), name, diagnostic.NoRow)

	out := make([]any, len(r.rows))

	for i, row := range r.rows {
		c, err := r.factories.Instantiate(t, elem)
		if err != nil {
			return nil, locate(err, ErrInstantiation, t, name, i)
		}

		raw := r.field(row, i, name)
		if raw == nil && s.kind == strategyConverter {
			return nil, &Error{Kind: ErrMissingData, Type: elem, Field: name, Row: i, Err: errors.New("converter elements need the field")}
		}

		text, ok := raw.(string)
		if !ok && raw != nil {
			text = fmt.Sprint(raw)
		}

		if text != "" {
			for _, token := range strings.Split(text, r.opts.Delimiter) {
				v, err := r.value(s, elem, token, fixture.Row{name: token})
				if err != nil {
					return nil, locate(err, ErrMalformedField, elem, name, i)
				}

				if v == nil {
					continue
				}

				if err := c.Add(v); err != nil {
					if errors.Is(err, collection.ErrElementType) {
						return nil, locate(err, ErrUnresolvableType, t, name, i)
					}

					return nil, locate(err, ErrMalformedField, t, name, i)
				}
			}
		}

		out[i] = valueOf(c)
	}

	return out, nil
}

func valueOf(c collection.Collection) any {
	if v, ok := c.(collection.Valuer); ok {
		return v.Value()
	}

	return c
}

// field returns the raw value of a field. A field missing from the row is noted with the
// names it might have meant.
func (r *resolution) field(row fixture.Row, i int, name string) any {
	raw, ok := row.Get(name)
	if ok {
		return raw
	}

	if _, present := row[name]; present {
		r.diags.AddInfo(diagnostic.CodeNoValue, "field is null", r.p.Type.String(), name, i)
		return nil
	}

	suggestions := match.Names(match.Suggest(name, row.Names(), match.DefaultMinScore, 3))
	r.diags.AddWarning(diagnostic.CodeAbsentField, "field is absent", r.p.Type.String(), name, i, suggestions...)

	return nil
}

func (r *resolution) fail(err error) {
	var re *Error
	if !errors.As(err, &re) {
		r.diags.AddError(diagnostic.CodeUnresolvable, err.Error(), "", "", diagnostic.NoRow)
		return
	}

	code := diagnostic.CodeUnresolvable

	switch re.Kind {
	case ErrMissingData:
		code = diagnostic.CodeMissingData
	case ErrInstantiation:
		code = diagnostic.CodeInstantiation
	case ErrMalformedField:
		code = diagnostic.CodeMalformed
	}

	typeName := ""
	if re.Type != nil {
		typeName = re.Type.String()
	}

	msg := re.Kind.Error()
	if re.Err != nil {
		msg += ": " + re.Err.Error()
	}

	r.diags.AddError(code, msg, typeName, re.Field, re.Row)
}
