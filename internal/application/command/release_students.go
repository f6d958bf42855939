package command

import (
	"context"
	"fmt"

	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RELEASE STUDENT COMMANDS
// Tear down one slot or the whole registry.
// ══════════════════════════════════════════════════════════════════════════════

// ReleaseStudentCommand releases the record in one slot.
type ReleaseStudentCommand struct {
	Slot int
}

// ReleaseStudentsResult contains the result of a bulk teardown.
type ReleaseStudentsResult struct {
	// Released is the number of records torn down.
	Released int

	// Remaining is the number of populated slots after teardown.
	Remaining int
}

// ReleaseStudentHandler handles teardown commands.
type ReleaseStudentHandler struct {
	registry *registry.Registry
}

// NewReleaseStudentHandler creates a new ReleaseStudentHandler.
func NewReleaseStudentHandler(reg *registry.Registry) *ReleaseStudentHandler {
	return &ReleaseStudentHandler{registry: reg}
}

// Handle releases a single slot. Releasing an empty slot is an error
// matching shared.ErrMissingRecord.
func (h *ReleaseStudentHandler) Handle(ctx context.Context, cmd ReleaseStudentCommand) error {
	if err := h.registry.Release(cmd.Slot); err != nil {
		return fmt.Errorf("release_student: slot %d: %w", cmd.Slot, err)
	}

	logger.FromContext(ctx).Debug("student released",
		logger.Operation("release_student"),
		logger.SlotIndex(cmd.Slot),
	)
	return nil
}

// HandleAll releases every populated slot; empty slots are skipped.
// A slot that fails to tear down is logged and reported in the returned
// error; the other slots are still released.
func (h *ReleaseStudentHandler) HandleAll(ctx context.Context) (*ReleaseStudentsResult, error) {
	log := logger.FromContext(ctx).With(logger.Operation("release_all"))

	released, err := h.registry.ReleaseAll()

	result := &ReleaseStudentsResult{
		Released:  released,
		Remaining: h.registry.Populated(),
	}

	if err != nil {
		log.Warn("registry teardown incomplete",
			logger.Int("released", result.Released),
			logger.Int("remaining", result.Remaining),
			logger.Err(err),
		)
		return result, fmt.Errorf("release_all: %w", err)
	}

	log.Info("registry released",
		logger.Int("released", result.Released),
		logger.Int("remaining", result.Remaining),
	)

	return result, nil
}
