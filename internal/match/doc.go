// Package match provides identifier normalization and Levenshtein scoring used to suggest
// fixture field names close to one that was asked for but is missing.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "maxCount" and "max_count" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to a wanted one
package match
