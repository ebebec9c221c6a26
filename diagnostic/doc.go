// Package diagnostic provides structured warnings and errors produced while
// reviving and validating mapping specifications.
//
// Key capabilities:
//   - Coded diagnostics tied to the spec path they concern
//   - Unknown descriptor types reported as warnings, never as failures
//   - Aggregation of error diagnostics into a single error value
package diagnostic
