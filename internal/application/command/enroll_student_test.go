package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/internal/domain/shared"
	"github.com/alem-hub/student-registry/pkg/logger"
)

func testContext() context.Context {
	return logger.WithContext(context.Background(), logger.Nop())
}

func TestEnrollStudent(t *testing.T) {
	reg, _ := registry.New(registry.DefaultSize)
	h := NewEnrollStudentHandler(reg)

	res, err := h.Handle(testContext(), EnrollStudentCommand{
		Slot: 0, Name: "Alice", Age: 20, NumScores: 3, Scores: []int{85, 90, 88},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Slot)
	assert.Equal(t, 3, res.NumScores)
	assert.NotEmpty(t, res.StudentID)

	s, err := reg.Get(0)
	require.NoError(t, err)
	assert.Equal(t, res.StudentID, s.ID().String())
	scores, _ := s.Scores()
	assert.Equal(t, []int{85, 90, 88}, scores)
}

func TestEnrollStudent_PartialScoresStayZero(t *testing.T) {
	reg, _ := registry.New(registry.DefaultSize)
	h := NewEnrollStudentHandler(reg)

	_, err := h.Handle(testContext(), EnrollStudentCommand{Slot: 2, Name: "Dan", NumScores: 4, Scores: []int{1}})
	require.NoError(t, err)

	s, _ := reg.Get(2)
	scores, _ := s.Scores()
	assert.Equal(t, []int{1, 0, 0, 0}, scores)
}

func TestEnrollStudent_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  EnrollStudentCommand
		want error
	}{
		{"negative count", EnrollStudentCommand{Name: "A", NumScores: -1}, shared.ErrInvalidArgument},
		{"too many scores", EnrollStudentCommand{Name: "A", NumScores: 1, Scores: []int{1, 2}}, shared.ErrIndexOutOfRange},
		{"empty name", EnrollStudentCommand{NumScores: 1}, shared.ErrInvalidArgument},
		{"slot out of range", EnrollStudentCommand{Slot: 7, Name: "A"}, shared.ErrIndexOutOfRange},
		{"slot occupied", EnrollStudentCommand{Slot: 0, Name: "A"}, shared.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := registry.New(registry.DefaultSize)
			h := NewEnrollStudentHandler(reg)
			_, err := h.Handle(testContext(), EnrollStudentCommand{Slot: 0, Name: "Occupant"})
			require.NoError(t, err)

			_, err = h.Handle(testContext(), tt.cmd)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, reg.Populated())
		})
	}
}

func TestReleaseStudent(t *testing.T) {
	reg, _ := registry.New(registry.DefaultSize)
	enroll := NewEnrollStudentHandler(reg)
	release := NewReleaseStudentHandler(reg)
	ctx := testContext()

	_, err := enroll.Handle(ctx, EnrollStudentCommand{Slot: 1, Name: "Bob", NumScores: 3, Scores: []int{75, 80, 70}})
	require.NoError(t, err)

	require.NoError(t, release.Handle(ctx, ReleaseStudentCommand{Slot: 1}))

	err = release.Handle(ctx, ReleaseStudentCommand{Slot: 1})
	assert.True(t, shared.IsMissingRecord(err))

	err = release.Handle(ctx, ReleaseStudentCommand{Slot: 2})
	assert.True(t, shared.IsMissingRecord(err))
}

func TestReleaseStudent_HandleAll(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo}))

	reg, _ := registry.New(registry.DefaultSize)
	enroll := NewEnrollStudentHandler(reg)
	for i, name := range []string{"Alice", "Bob"} {
		_, err := enroll.Handle(ctx, EnrollStudentCommand{Slot: i, Name: name, NumScores: 3})
		require.NoError(t, err)
	}

	res, err := NewReleaseStudentHandler(reg).HandleAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Released)
	assert.Equal(t, 0, res.Remaining)
	assert.Contains(t, buf.String(), `"registry released"`)
}

func TestEnrollStudent_SlotsNeverShareARecord(t *testing.T) {
	reg, _ := registry.New(registry.DefaultSize)
	enroll := NewEnrollStudentHandler(reg)
	ctx := testContext()

	first, err := enroll.Handle(ctx, EnrollStudentCommand{Slot: 0, Name: "Alice", NumScores: 1})
	require.NoError(t, err)
	second, err := enroll.Handle(ctx, EnrollStudentCommand{Slot: 1, Name: "Alice", NumScores: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.StudentID, second.StudentID)

	a, _ := reg.Get(0)
	b, _ := reg.Get(1)
	assert.NotSame(t, a, b)

	res, err := NewReleaseStudentHandler(reg).HandleAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Released)
}
