// Package errs provides standardized error types for the medicine order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct type carrying error details and an optional Cause
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for error chain support
//
// Domain-specific failures (prescription not usable, pharmacy not authorized,
// location resolution, no pharmacy available) are declared as sentinel errors
// in the packages that own them and wrapped with these types where useful.
package errs
