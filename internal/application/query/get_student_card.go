// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/internal/domain/shared"
	"github.com/alem-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT CARD QUERY
// Reads one registry slot and returns everything needed to display it:
// name, age, scores and the average.
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentCardQuery identifies the slot to read.
type GetStudentCardQuery struct {
	Slot int
}

// StudentCardDTO is a detached snapshot of a student record.
type StudentCardDTO struct {
	StudentID string `json:"student_id"`
	Slot      int    `json:"slot"`
	Name      string `json:"name"`
	Age       int    `json:"age"`

	// Scores is a copy; mutating it does not touch the record.
	Scores []int `json:"scores"`

	// Average is meaningful only when HasAverage is true.
	Average    float64 `json:"average"`
	HasAverage bool    `json:"has_average"`
}

// GetStudentCardHandler handles GetStudentCardQuery.
type GetStudentCardHandler struct {
	registry *registry.Registry
}

// NewGetStudentCardHandler creates a new GetStudentCardHandler.
func NewGetStudentCardHandler(reg *registry.Registry) *GetStudentCardHandler {
	return &GetStudentCardHandler{registry: reg}
}

// Handle executes the query. An empty slot yields an error matching
// shared.ErrMissingRecord.
func (h *GetStudentCardHandler) Handle(ctx context.Context, q GetStudentCardQuery) (*StudentCardDTO, error) {
	s, err := h.registry.Get(q.Slot)
	if err != nil {
		return nil, fmt.Errorf("get_student_card: slot %d: %w", q.Slot, err)
	}

	scores, err := s.Scores()
	if err != nil {
		return nil, fmt.Errorf("get_student_card: slot %d: %w", q.Slot, err)
	}

	dto := &StudentCardDTO{
		StudentID: s.ID().String(),
		Slot:      q.Slot,
		Name:      s.Name(),
		Age:       s.Age(),
		Scores:    scores,
	}

	avg, err := s.Average()
	switch {
	case err == nil:
		dto.Average = avg
		dto.HasAverage = true
	case errors.Is(err, shared.ErrDivideByZero):
		// No scores: the card is still valid, just without an average.
	default:
		return nil, fmt.Errorf("get_student_card: slot %d: %w", q.Slot, err)
	}

	logger.FromContext(ctx).Debug("student card read",
		logger.Operation("get_student_card"),
		logger.SlotIndex(q.Slot),
		logger.StudentID(dto.StudentID),
		logger.ScoreCount(len(dto.Scores)),
	)

	return dto, nil
}
