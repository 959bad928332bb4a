// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the five failure categories of the core:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, InvalidProductReferenceError
//   - Not found: ObjectNotFoundError
//   - Precondition: PreconditionFailedError (wrong state for a transition)
//   - Conflict policy: ActiveOrdersExistError, CannotPreserveHistoryError
//   - Persistence: PersistenceError (transaction aborted by the datastore)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the failure
//
// Validation and precondition errors are recoverable and never follow a write;
// persistence errors always follow a full rollback and carry the underlying cause.
package errs
