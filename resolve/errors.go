package resolve

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"param-supplier/collection"
)

var (
	ErrMissingData      = errors.New("missing test data")
	ErrUnresolvableType = errors.New("no strategy resolves the type")
	ErrInstantiation    = collection.ErrInstantiation
	ErrMalformedField   = errors.New("malformed field")
)

var (
	errNoMethod = errors.New("test method identifier is empty")
	errNoRows   = errors.New("no rows for test method")
)

var kinds = []error{ErrMissingData, ErrUnresolvableType, ErrInstantiation, ErrMalformedField}

// Error is a failed resolution. Kind is one of the package sentinels.
type Error struct {
	Kind   error
	Method string
	Type   reflect.Type
	Field  string
	// Row is the zero-based row index, or -1 when the failure is not tied to a row.
	Row int
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("resolve")

	if e.Method != "" {
		fmt.Fprintf(&b, " %s", e.Method)
	}

	if e.Type != nil {
		fmt.Fprintf(&b, " %s", e.Type)
	}

	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}

	if e.Row >= 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}

	fmt.Fprintf(&b, ": %v", e.Kind)

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// fault builds a failure whose place is filled in later by locate.
func fault(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Row: -1, Err: fmt.Errorf(format, args...)}
}

// locate places err at a type, field and row. Errors that are not an *Error yet take the kind
// of the first sentinel they wrap, or def.
func locate(err error, def error, t reflect.Type, field string, row int) *Error {
	var re *Error
	if errors.As(err, &re) {
		placed := *re
		if placed.Type == nil {
			placed.Type = t
		}
		if placed.Field == "" {
			placed.Field = field
		}
		if placed.Row < 0 {
			placed.Row = row
		}

		return &placed
	}

	return &Error{Kind: kindOf(err, def), Type: t, Field: field, Row: row, Err: err}
}

func kindOf(err, def error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return def
}
