// Package errs provides standardized error types for the laundry application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For uniqueness conflicts such as duplicate usernames
//   - InvalidStateTransitionError: For disallowed order status transitions
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter relies on errors.Is against the sentinels to map
// failures to response status codes.
package errs
