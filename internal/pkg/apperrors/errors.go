package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for booking and chat operations. Handlers map these onto
// HTTP status codes; callers distinguish them with errors.Is.
var (
	// ErrNotAuthorized is returned when the actor lacks the role or
	// relationship required for the operation. Never retried.
	ErrNotAuthorized = errors.New("actor is not authorized for this operation")

	// ErrInvalidTransition is returned when the requested status change is
	// not the legal next step or the booking is in a terminal state.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrBookingUnavailable is returned when the conditioned accept write
	// matched zero rows: the booking was claimed or cancelled concurrently.
	ErrBookingUnavailable = errors.New("booking is no longer available")

	// ErrBookingNotFound is returned when no booking exists for the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrProfileNotFound is returned when no profile exists for a principal.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRiderProfileNotFound is returned when a rider-only operation is
	// attempted by a principal without a rider profile.
	ErrRiderProfileNotFound = errors.New("rider profile not found")

	// ErrRiderUnavailable is returned when a rider attempts to accept a
	// booking while marked unavailable.
	ErrRiderUnavailable = errors.New("rider is not available")

	// ErrMessageNotAllowed is returned when a principal who is neither the
	// booking owner nor the assigned rider attempts to read or post messages.
	ErrMessageNotAllowed = errors.New("principal is not a party to this booking")
)

// ValidationError reports malformed or incomplete input. It is surfaced to
// the initiating caller and never reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError constructs a ValidationError for a field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransientError wraps a network or store failure that the caller may retry
// explicitly. Mutating writes are never silently retried.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store error during %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as transient for the given operation
func NewTransientError(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// IsTransient reports whether err is a TransientError
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
