package shared

import (
	"strings"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════════════════════
// ID Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// StudentID represents a unique student identifier (UUID format).
type StudentID string

// GenerateStudentID returns a fresh random StudentID.
func GenerateStudentID() StudentID {
	return StudentID(uuid.NewString())
}

// IsValid checks if the student ID is a valid UUID.
func (s StudentID) IsValid() bool {
	return uuid.Validate(string(s)) == nil
}

// String returns the string representation.
func (s StudentID) String() string {
	return string(s)
}

// IsEmpty checks if the ID is empty.
func (s StudentID) IsEmpty() bool {
	return s == ""
}

// NewStudentID creates a new StudentID with validation.
func NewStudentID(id string) (StudentID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", WrapError("shared", "NewStudentID", ErrInvalidArgument, "invalid student ID format", err)
	}
	return StudentID(parsed.String()), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Age Value Object
// ═══════════════════════════════════════════════════════════════════════════

// Age is a student's age in whole years.
type Age int

// IsValid checks that the age is non-negative.
func (a Age) IsValid() bool {
	return a >= 0
}

// Int returns the underlying int value.
func (a Age) Int() int {
	return int(a)
}

// NewAge creates a new Age with validation.
func NewAge(years int) (Age, error) {
	if years < 0 {
		return 0, WrapError("shared", "NewAge", ErrInvalidArgument, "age cannot be negative", ErrNegativeValue)
	}
	return Age(years), nil
}
