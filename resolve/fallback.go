package resolve

import (
	"fmt"
	"reflect"
	"time"

	"param-supplier/datetime"
	"param-supplier/options"
)

var (
	anyType       = reflect.TypeFor[any]()
	timeType      = reflect.TypeFor[time.Time]()
	timestampType = reflect.TypeFor[datetime.Timestamp]()
	timeOfDayType = reflect.TypeFor[datetime.TimeOfDay]()
	dateType      = reflect.TypeFor[datetime.Date]()
)

// dateRule reports the date rule serving t, if enabled.
func (e *Engine) dateRule(t reflect.Type) (options.FallbackEnum, bool) {
	var rule options.FallbackEnum

	switch t {
	case timestampType:
		rule = options.FallbackTimestamp
	case timeOfDayType:
		rule = options.FallbackTimeOfDay
	case dateType:
		rule = options.FallbackDate
	case timeType:
		rule = options.FallbackTime
	default:
		return 0, false
	}

	return rule, e.opts.Fallback.Has(rule)
}

// hasFallback reports whether some fallback rule may resolve values of type t.
func (e *Engine) hasFallback(t reflect.Type) bool {
	if _, ok := e.dateRule(t); ok {
		return true
	}

	return e.opts.Fallback.Has(options.FallbackPassThrough)
}

// fallback resolves a raw field value with the built-in rules. A nil raw value stays nil,
// unless only pass-through serves t and t is a struct or array other than the date types:
// nothing in a fixture can produce those.
func (e *Engine) fallback(t reflect.Type, raw any) (any, error) {
	rule, dated := e.dateRule(t)

	switch {
	case dated && raw == nil:
		return nil, nil
	case dated:
		return e.parseDate(rule, raw)
	case !e.opts.Fallback.Has(options.FallbackPassThrough):
		return nil, fault(ErrUnresolvableType, "no fallback rule enabled for %s", t)
	case raw == nil && rule == 0 && !passesNil(t):
		return nil, fault(ErrUnresolvableType, "no value of %s to pass through", t)
	case raw == nil:
		return nil, nil
	}

	return passThrough(t, raw)
}

// passesNil reports whether an absent value of t may be given as nil.
func passesNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Array:
		return false
	default:
		return true
	}
}

// parseDate converts already typed times and parses anything else as text. Malformed text
// never reaches the pass-through rule.
func (e *Engine) parseDate(rule options.FallbackEnum, raw any) (any, error) {
	if t, ok := timeOf(raw); ok {
		switch rule {
		case options.FallbackTimestamp:
			return datetime.TimestampOf(t), nil
		case options.FallbackTimeOfDay:
			return datetime.TimeOfDayOf(t), nil
		case options.FallbackDate:
			return datetime.DateOf(t), nil
		default:
			return t, nil
		}
	}

	text, ok := raw.(string)
	if !ok {
		text = fmt.Sprint(raw)
	}

	var (
		v   any
		err error
	)

	switch rule {
	case options.FallbackTimestamp:
		v, err = datetime.ParseTimestamp(text, e.opts.TimestampLayouts...)
	case options.FallbackTimeOfDay:
		v, err = datetime.ParseTimeOfDay(text, e.opts.TimeLayouts...)
	case options.FallbackDate:
		v, err = datetime.ParseDate(text, e.opts.DateLayouts...)
	default:
		v, err = datetime.ParseTime(text, e.opts.DateTimeLayouts...)
	}

	if err != nil {
		return nil, &Error{Kind: ErrMalformedField, Row: -1, Err: err}
	}

	return v, nil
}

func timeOf(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case datetime.Timestamp:
		return v.Time, true
	case datetime.TimeOfDay:
		return v.Time, true
	case datetime.Date:
		return v.Time, true
	default:
		return time.Time{}, false
	}
}

// passThrough returns raw when t accepts it: t is an interface raw satisfies, raw is assignable,
// or raw has the same kind and converts. String kinds take the text of any raw value.
func passThrough(t reflect.Type, raw any) (any, error) {
	rv := reflect.ValueOf(raw)
	rt := rv.Type()

	switch {
	case t.Kind() == reflect.Interface && rt.Implements(t):
		return raw, nil
	case rt.AssignableTo(t):
		return raw, nil
	case rt.Kind() == t.Kind() && rt.ConvertibleTo(t):
		return rv.Convert(t).Interface(), nil
	case t.Kind() == reflect.String:
		return reflect.ValueOf(fmt.Sprint(raw)).Convert(t).Interface(), nil
	default:
		return nil, fault(ErrUnresolvableType, "%T value %v does not fit", raw, raw)
	}
}
