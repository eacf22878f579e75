// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines a closed taxonomy of error kinds:
//   - ObjectNotFoundError: a referenced object does not resolve
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - NotAuthorizedError: the acting user may not perform the operation
//   - ConflictError: a concurrent writer already claimed the contended field
//   - PreconditionFailedError: the object is not in the state the operation requires
//   - InsufficientFundsError: a wallet posting would drive a balance negative
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Callers branch on the sentinel with errors.Is, never on message content.
// All of these errors are recoverable by the caller; none are process-fatal.
package errs
