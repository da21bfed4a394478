// Package errs defines the error taxonomy shared by every layer of the
// mailroom application.
//
// Each error kind follows the same pattern:
//   - a sentinel variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the offending parameter and optional cause
//   - constructors with and without a cause
//   - Error and Unwrap methods wiring the struct to its sentinel
//
// Handlers at the edges classify failures by sentinel (not found, invalid,
// required, out of range) to choose the response, while the struct fields
// keep the parameter name available for messages and logs.
package errs
