package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure categories used across the application.
// Concrete error types wrap exactly one of these, so callers can classify
// any failure with errors.Is.
var (
	// ErrValueIsRequired indicates a required input value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid indicates an input value is malformed or out of the allowed domain.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrObjectNotFound indicates a referenced entity does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidProductReference indicates an order item carries a malformed product identifier.
	ErrInvalidProductReference = errors.New("invalid product reference")
	// ErrPreconditionFailed indicates an entity exists but is in the wrong state
	// for the requested transition.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrActiveOrdersExist indicates a driver cannot be deleted while orders are in flight.
	ErrActiveOrdersExist = errors.New("active orders exist")
	// ErrCannotPreserveHistory indicates a driver with order history could not be
	// soft-deleted and physical deletion was refused.
	ErrCannotPreserveHistory = errors.New("cannot preserve history")
	// ErrPersistenceFailed indicates the datastore aborted a transaction.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// sanitize flattens multi-line values so an error renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for the missing parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for the missing parameter with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a malformed or out-of-domain value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for the invalid parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for the invalid parameter with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports a lookup of a non-existent entity.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for the missing entity.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for the missing entity with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidProductReferenceError reports an order item whose product identifier
// is not a well-formed UUID. Position is the zero-based index of the offending
// item in the submitted item list.
type InvalidProductReferenceError struct {
	Position int
	Value    string
	Cause    error
}

// NewInvalidProductReferenceError creates an error for the malformed product reference
// at the given item position.
func NewInvalidProductReferenceError(position int, value string) *InvalidProductReferenceError {
	return &InvalidProductReferenceError{Position: position, Value: value}
}

// NewInvalidProductReferenceErrorWithCause creates an error for the malformed product
// reference with the parsing failure as cause.
func NewInvalidProductReferenceErrorWithCause(position int, value string, cause error) *InvalidProductReferenceError {
	return &InvalidProductReferenceError{Position: position, Value: value, Cause: cause}
}

func (e *InvalidProductReferenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: items[%d] has product id %q (cause: %s)",
			ErrInvalidProductReference, e.Position, sanitize(e.Value), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: items[%d] has product id %q", ErrInvalidProductReference, e.Position, sanitize(e.Value))
}

func (e *InvalidProductReferenceError) Unwrap() error {
	return ErrInvalidProductReference
}

// PreconditionFailedError reports that an entity is in the wrong state for the
// requested transition. Entity names which side of a coupled operation failed
// (for example "order" vs "driver").
type PreconditionFailedError struct {
	Entity string
	ID     string
	State  string
	Cause  error
}

// NewPreconditionFailedError creates an error describing the entity and the state
// that blocked the transition.
func NewPreconditionFailedError(entity, id, state string) *PreconditionFailedError {
	return &PreconditionFailedError{Entity: entity, ID: id, State: state}
}

// NewPreconditionFailedErrorWithCause creates a precondition error with an underlying cause.
func NewPreconditionFailedErrorWithCause(entity, id, state string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Entity: entity, ID: id, State: state, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s is in state %s (cause: %s)",
			ErrPreconditionFailed, sanitize(e.Entity), sanitize(e.ID), sanitize(e.State), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s %s is in state %s",
		ErrPreconditionFailed, sanitize(e.Entity), sanitize(e.ID), sanitize(e.State))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ActiveOrdersExistError reports a driver deletion blocked by in-flight orders.
// Carries the active order count and the driver's current status so the caller
// can present the full picture.
type ActiveOrdersExistError struct {
	DriverID     string
	ActiveOrders int64
	DriverStatus string
}

// NewActiveOrdersExistError creates an error describing why the driver cannot be deleted.
func NewActiveOrdersExistError(driverID string, activeOrders int64, driverStatus string) *ActiveOrdersExistError {
	return &ActiveOrdersExistError{DriverID: driverID, ActiveOrders: activeOrders, DriverStatus: driverStatus}
}

func (e *ActiveOrdersExistError) Error() string {
	return fmt.Sprintf("%s: driver %s has %d active orders (status: %s)",
		ErrActiveOrdersExist, sanitize(e.DriverID), e.ActiveOrders, sanitize(e.DriverStatus))
}

func (e *ActiveOrdersExistError) Unwrap() error {
	return ErrActiveOrdersExist
}

// CannotPreserveHistoryError reports that a driver with order history could not be
// flagged inactive. Physical deletion is refused in this case so referential
// history is never lost.
type CannotPreserveHistoryError struct {
	DriverID string
	Cause    error
}

// NewCannotPreserveHistoryError creates an error for the failed soft-delete.
func NewCannotPreserveHistoryError(driverID string, cause error) *CannotPreserveHistoryError {
	return &CannotPreserveHistoryError{DriverID: driverID, Cause: cause}
}

func (e *CannotPreserveHistoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: driver %s (cause: %s)", ErrCannotPreserveHistory, sanitize(e.DriverID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: driver %s", ErrCannotPreserveHistory, sanitize(e.DriverID))
}

func (e *CannotPreserveHistoryError) Unwrap() error {
	return ErrCannotPreserveHistory
}

// PersistenceError reports a transaction aborted by the underlying datastore.
// Op names the business operation that was rolled back; Cause carries the
// datastore failure.
type PersistenceError struct {
	Op    string
	Cause error
}

// NewPersistenceError creates an error for the rolled-back operation.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailed, sanitize(e.Op), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailed, sanitize(e.Op))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}
