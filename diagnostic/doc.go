// Package diagnostic collects structured notes produced while resolving parameter values:
// errors that stop a resolution, warnings about data that resolved to nothing, and infos
// explaining which strategy produced a value.
//
// Key capabilities:
//   - Absent field warnings with "did you mean" suggestions
//   - Per-row placement of each note
//   - A combined error built from all error notes
package diagnostic
