// Package errs provides standardized error types for the canteen application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The application error taxonomy maps onto these types: a missing or
// expired order is an ObjectNotFoundError, an illegal status transition
// is a ValueIsInvalidError raised by the order state machine, and
// storage failures are wrapped with their cause preserved.
package errs
