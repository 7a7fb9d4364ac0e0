package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle operations. Every failure returned by the
// services wraps exactly one of these.
var (
	// ErrInvalidTransition is returned when the requested state edge is not legal.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrConflictingRequest is returned when the device already has an open disposal request.
	ErrConflictingRequest = errors.New("conflicting request")

	// ErrStaleState is returned when a concurrent writer changed the row first.
	// The caller should re-fetch and retry.
	ErrStaleState = errors.New("stale state")

	// ErrUnauthorized is returned when the access gate denies the action.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateRecord is returned when a recycling outcome was already recorded.
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed input.
	ErrValidation = errors.New("validation error")
)

// DenyReason is a machine-readable code explaining an access denial.
type DenyReason string

const (
	ReasonNotAuthenticated DenyReason = "not_authenticated"
	ReasonStaffRequired    DenyReason = "staff_required"
	ReasonAdminRequired    DenyReason = "admin_required"
	ReasonOfficerRequired  DenyReason = "officer_required"
	ReasonSelfApproval     DenyReason = "self_approval"
	ReasonNotOwner         DenyReason = "not_owner"
)

// AccessDenied carries the reason the gate refused an action.
type AccessDenied struct {
	Action Action
	Reason DenyReason
}

func (e *AccessDenied) Error() string {
	return fmt.Sprintf("%s: %s denied (%s)", ErrUnauthorized, e.Action, e.Reason)
}

func (e *AccessDenied) Unwrap() error {
	return ErrUnauthorized
}

func Deny(action Action, reason DenyReason) *AccessDenied {
	return &AccessDenied{Action: action, Reason: reason}
}

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TransitionError records the rejected edge.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrorCode is the stable string rendered to API consumers.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrConflictingRequest):
		return "conflicting_request"
	case errors.Is(err, ErrStaleState):
		return "stale_state"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrDuplicateRecord):
		return "duplicate_record"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	default:
		return "internal_error"
	}
}
