package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"param-supplier/internal/common"
)

// Codes used by the resolution engine.
const (
	CodeAbsentField   = "absent-field"
	CodeNoValue       = "no-value"
	CodeStrategy      = "strategy"
	CodeMalformed     = "malformed"
	CodeUnresolvable  = "unresolvable"
	CodeInstantiation = "instantiation"
	CodeMissingData   = "missing-data"
)

// NoRow marks a diagnostic that is not tied to a single row.
const NoRow = -1

// Diagnostics holds all diagnostic information from a resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single note.
type Diagnostic struct {
	Severity Severity
	// Code is a unique identifier for this kind of note.
	Code    string
	Message string
	// Type names the requested parameter type (if any).
	Type string
	// Field names the fixture field (if any).
	Field string
	// Row is the zero-based row index, or NoRow.
	Row int
	// Suggestions are known field names close to Field.
	Suggestions []string
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, field string, row int, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, typeName, field, row, suggestions))
}

// AddWarning adds a warning diagnostic. Suggestions name known fields close to field.
func (d *Diagnostics) AddWarning(code, message, typeName, field string, row int, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, typeName, field, row, suggestions))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, field string, row int) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, typeName, field, row, nil))
}

func newDiagnostic(severity Severity, code, message, typeName, field string, row int, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     message,
		Type:        typeName,
		Field:       field,
		Row:         row,
		Suggestions: suggestions,
	}
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge appends another Diagnostics into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	if d.Row != NoRow {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if !common.IsEmpty(d.Suggestions) {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
