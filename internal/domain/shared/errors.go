// Package shared contains the error kinds and value objects that are used
// across the student and registry domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Storage errors. ErrAllocationTooSmall is never produced: a Go string
	// always carries its full length.
	ErrAllocationTooSmall = errors.New("allocation too small")

	// Access errors
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMissingRecord   = errors.New("missing record")

	// Arithmetic errors
	ErrDivideByZero = errors.New("divide by zero")

	// Validation errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")

	// State errors
	ErrInvalidState = errors.New("invalid state")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "registry"
	Op      string // Operation that failed, e.g., "Create", "SetScore"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Errorf builds a DomainError whose message is formatted from args.
func Errorf(domain, op string, kind error, format string, args ...any) *DomainError {
	return NewDomainError(domain, op, kind, fmt.Sprintf(format, args...))
}

// Student domain errors
var (
	ErrStudentReleased    = NewDomainError("student", "Access", ErrMissingRecord, "student record already released")
	ErrNegativeScoreCount = NewDomainError("student", "Create", ErrInvalidArgument, "number of scores cannot be negative")
	ErrEmptyName          = NewDomainError("student", "Create", ErrInvalidArgument, "name cannot be empty")
	ErrNoScoresToAverage  = NewDomainError("student", "CalculateAverage", ErrDivideByZero, "cannot average an empty score list")
	ErrTooManyScoreValues = NewDomainError("student", "SetScores", ErrIndexOutOfRange, "more score values than score slots")
	ErrStudentAttached    = NewDomainError("student", "Attach", ErrInvalidState, "student record is already held by a slot")
)

// Registry domain errors
var (
	ErrSlotEmpty        = NewDomainError("registry", "Get", ErrMissingRecord, "slot is empty")
	ErrSlotOccupied     = NewDomainError("registry", "Put", ErrInvalidState, "slot is already populated")
	ErrNilStudent       = NewDomainError("registry", "Put", ErrInvalidArgument, "student cannot be nil")
	ErrReleasedStudent  = NewDomainError("registry", "Put", ErrInvalidArgument, "student record has been released")
	ErrNegativeCapacity = NewDomainError("registry", "New", ErrInvalidArgument, "registry size cannot be negative")
	ErrCapacityTooLarge = NewDomainError("registry", "New", ErrInvalidArgument, "registry size exceeds the maximum")
)

// IsMissingRecord checks if the error is a "missing record" error.
func IsMissingRecord(err error) bool {
	return errors.Is(err, ErrMissingRecord)
}

// IsIndexOutOfRange checks if the error is an "index out of range" error.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsDivideByZero checks if the error is a "divide by zero" error.
func IsDivideByZero(err error) bool {
	return errors.Is(err, ErrDivideByZero)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue)
}
