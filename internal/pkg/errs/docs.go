// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For order lifecycle operations illegal from the current status
//   - InsufficientStockError: For reservations the stock ledger cannot satisfy
//   - ConcurrentModificationError: For compare-and-set writes that lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// InvalidTransition, InsufficientStock, and ConcurrentModification are expected
// business outcomes, not failures: callers match them with errors.Is, report a
// specific reason to the acting user, and leave all state untouched.
package errs
