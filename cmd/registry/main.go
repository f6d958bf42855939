// Package main runs the student registry demo: it enrolls two students,
// leaves the third slot empty, prints every slot with its average and then
// tears the registry down.
//
// The report goes to stdout; structured logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/student-registry/config"
	"github.com/alem-hub/student-registry/internal/application/command"
	"github.com/alem-hub/student-registry/internal/application/query"
	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/internal/domain/shared"
	"github.com/alem-hub/student-registry/internal/interface/presenter"
	"github.com/alem-hub/student-registry/pkg/logger"
)

// demoStudents are enrolled into the first slots; the remaining slots stay empty.
var demoStudents = []command.EnrollStudentCommand{
	{Slot: 0, Name: "Alice", Age: 20, NumScores: 3, Scores: []int{85, 90, 88}},
	{Slot: 1, Name: "Bob", Age: 22, NumScores: 3, Scores: []int{75, 80, 70}},
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) (err error) {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION & LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := cfg.LoggerOptions()
	opts.Output = stderr
	log := logger.New(opts).With(logger.Component(cfg.App.Name))
	ctx = logger.WithContext(ctx, log)

	log.Info("starting student registry demo",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Int("slots", cfg.Registry.Slots),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 2. REGISTRY & HANDLERS
	// ─────────────────────────────────────────────────────────────────────────
	reg, err := registry.New(cfg.Registry.Slots)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	enroll := command.NewEnrollStudentHandler(reg)
	release := command.NewReleaseStudentHandler(reg)
	cards := query.NewGetStudentCardHandler(reg)
	view := presenter.NewStudentCardPresenter()

	defer func() {
		if _, releaseErr := release.HandleAll(ctx); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 3. POPULATE
	// ─────────────────────────────────────────────────────────────────────────
	for _, cmd := range demoStudents {
		if _, err := enroll.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. REPORT
	// ─────────────────────────────────────────────────────────────────────────
	for slot := 0; slot < reg.Len(); slot++ {
		card, err := cards.Handle(ctx, query.GetStudentCardQuery{Slot: slot})
		if shared.IsMissingRecord(err) {
			log.Info("skipping empty slot",
				logger.SlotIndex(slot),
				logger.SlotState(registry.SlotEmpty.String()),
			)
			if _, err := io.WriteString(stdout, view.FormatMissing(slot)); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			continue
		}
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(stdout, view.FormatStudentCard(card)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if card.HasAverage {
			log.Debug("average computed", logger.SlotIndex(slot), logger.Average(card.Average))
		}
	}

	return nil
}
