// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/internal/domain/shared"
	"github.com/alem-hub/student-registry/internal/domain/student"
	"github.com/alem-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL STUDENT COMMAND
// Creates a student record, fills in its scores and puts it into an empty
// registry slot.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentCommand contains the data for a new record.
type EnrollStudentCommand struct {
	// Slot is the registry position to fill.
	Slot int

	// Name is copied into the record as is.
	Name string

	// Age in years.
	Age int

	// NumScores fixes the length of the score list.
	NumScores int

	// Scores are written into the first len(Scores) slots; the rest stay zero.
	Scores []int
}

// Validate validates the command.
func (c EnrollStudentCommand) Validate() error {
	if c.NumScores < 0 {
		return shared.ErrNegativeScoreCount
	}
	if len(c.Scores) > c.NumScores {
		return shared.Errorf("command", "EnrollStudent", shared.ErrIndexOutOfRange,
			"%d scores given for %d slots", len(c.Scores), c.NumScores)
	}
	return nil
}

// EnrollStudentResult contains the result of enrolling a student.
type EnrollStudentResult struct {
	StudentID string
	Slot      int
	NumScores int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// EnrollStudentHandler handles the EnrollStudentCommand.
type EnrollStudentHandler struct {
	registry *registry.Registry
}

// NewEnrollStudentHandler creates a new EnrollStudentHandler.
func NewEnrollStudentHandler(reg *registry.Registry) *EnrollStudentHandler {
	return &EnrollStudentHandler{registry: reg}
}

// Handle executes the enroll command. A record that cannot be placed is
// released before the error is returned.
func (h *EnrollStudentHandler) Handle(
	ctx context.Context,
	cmd EnrollStudentCommand,
) (*EnrollStudentResult, error) {
	log := logger.FromContext(ctx).With(logger.Operation("enroll_student"), logger.SlotIndex(cmd.Slot))

	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("enroll_student: validation failed: %w", err)
	}

	s, err := student.NewStudent(student.NewStudentParams{
		Name:      cmd.Name,
		Age:       cmd.Age,
		NumScores: cmd.NumScores,
	})
	if err != nil {
		return nil, fmt.Errorf("enroll_student: create: %w", err)
	}

	if err := s.SetScores(cmd.Scores...); err != nil {
		_ = s.Release()
		return nil, fmt.Errorf("enroll_student: set scores: %w", err)
	}

	if err := h.registry.Put(cmd.Slot, s); err != nil {
		_ = s.Release()
		return nil, fmt.Errorf("enroll_student: put into slot %d: %w", cmd.Slot, err)
	}

	log.Debug("student enrolled",
		logger.StudentID(s.ID().String()),
		logger.StudentName(s.Name()),
		logger.ScoreCount(s.NumScores()),
	)

	return &EnrollStudentResult{
		StudentID: s.ID().String(),
		Slot:      cmd.Slot,
		NumScores: s.NumScores(),
	}, nil
}
