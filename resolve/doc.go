// Package resolve turns raw fixture rows into typed parameter values.
//
// An Engine classifies the declared type of a parameter once and then produces exactly one
// value per row:
//   - map types receive the whole row, copied into a new map for types other than fixture.Row
//     and map[string]any
//   - collection types receive a fresh container per row, filled from the delimited sub-values
//     of one field
//   - every other type is resolved by its editor, else its converter, else the built-in
//     fallback rules
//
// Failures abort the whole resolution and are reported as *Error, which matches the sentinels
// ErrMissingData, ErrUnresolvableType, ErrInstantiation and ErrMalformedField with errors.Is.
package resolve
