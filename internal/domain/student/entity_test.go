package student

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-registry/internal/domain/shared"
)

func newTestStudent(t *testing.T, name string, numScores int) *Student {
	t.Helper()
	s, err := NewStudent(NewStudentParams{Name: name, Age: 20, NumScores: numScores})
	require.NoError(t, err)
	return s
}

func TestNewStudent_Valid(t *testing.T) {
	s, err := NewStudent(NewStudentParams{Name: "Alice", Age: 20, NumScores: 3})
	require.NoError(t, err)

	assert.True(t, s.ID().IsValid())
	assert.Equal(t, "Alice", s.Name())
	assert.Equal(t, 20, s.Age())
	assert.Equal(t, 3, s.NumScores())
	assert.False(t, s.IsReleased())

	scores, err := s.Scores()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, scores)
}

func TestNewStudent_ExplicitID(t *testing.T) {
	const id = "7ED99BD0-87B2-4DBB-A97B-596C3F29C49B"

	s, err := NewStudent(NewStudentParams{ID: id, Name: "Bob", NumScores: 1})
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(id), s.ID().String())

	_, err = NewStudent(NewStudentParams{ID: "not-a-uuid", Name: "Bob"})
	assert.True(t, shared.IsValidation(err))
}

func TestNewStudent_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params NewStudentParams
		want   error
	}{
		{"negative score count", NewStudentParams{Name: "A", NumScores: -1}, shared.ErrNegativeScoreCount},
		{"negative age", NewStudentParams{Name: "A", Age: -5}, shared.ErrNegativeValue},
		{"empty name", NewStudentParams{Name: "", NumScores: 1}, shared.ErrEmptyName},
		{"blank name", NewStudentParams{Name: "  \t", NumScores: 1}, shared.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStudent(tt.params)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, shared.ErrInvalidArgument)
		})
	}
}

func TestNewStudent_ZeroScores(t *testing.T) {
	s := newTestStudent(t, "Empty", 0)

	assert.Equal(t, 0, s.NumScores())
	_, err := s.Score(0)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

func TestNewStudent_NameRoundTrip(t *testing.T) {
	names := []string{
		"A",
		"Alice",
		"Александра Петрова",
		"名前",
		"trailing space ",
		strings.Repeat("x", 1<<16),
	}

	for _, name := range names {
		s := newTestStudent(t, name, 1)
		assert.Equal(t, name, s.Name())
		assert.Len(t, s.Name(), len(name))
	}
}

func TestSetScore_Bounds(t *testing.T) {
	s := newTestStudent(t, "Alice", 3)

	for i, v := range []int{85, 90, 88} {
		require.NoError(t, s.SetScore(i, v))
	}

	for _, idx := range []int{-1, 3, 100} {
		err := s.SetScore(idx, 1)
		assert.ErrorIs(t, err, shared.ErrIndexOutOfRange, "index %d", idx)
		assert.True(t, shared.IsIndexOutOfRange(err))

		_, err = s.Score(idx)
		assert.ErrorIs(t, err, shared.ErrIndexOutOfRange, "index %d", idx)
	}

	got, err := s.Score(2)
	require.NoError(t, err)
	assert.Equal(t, 88, got)
}

func TestSetScores(t *testing.T) {
	s := newTestStudent(t, "Bob", 3)

	require.NoError(t, s.SetScores(75, 80))
	scores, _ := s.Scores()
	assert.Equal(t, []int{75, 80, 0}, scores)

	err := s.SetScores(1, 2, 3, 4)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	scores, _ = s.Scores()
	assert.Equal(t, []int{75, 80, 0}, scores, "failed SetScores must not mutate")
}

func TestScores_ReturnsCopy(t *testing.T) {
	s := newTestStudent(t, "Alice", 2)
	require.NoError(t, s.SetScores(1, 2))

	scores, err := s.Scores()
	require.NoError(t, err)
	scores[0] = 999

	got, _ := s.Score(0)
	assert.Equal(t, 1, got)
}

func TestAverage(t *testing.T) {
	s := newTestStudent(t, "Alice", 3)
	require.NoError(t, s.SetScores(85, 90, 88))

	avg, err := s.Average()
	require.NoError(t, err)
	assert.InDelta(t, 87.666666, avg, 1e-6)

	empty := newTestStudent(t, "Nobody", 0)
	_, err = empty.Average()
	assert.ErrorIs(t, err, shared.ErrDivideByZero)
}

func TestRelease(t *testing.T) {
	s := newTestStudent(t, "Alice", 3)

	require.NoError(t, s.Release())
	assert.True(t, s.IsReleased())
	assert.Empty(t, s.Name())
	assert.Equal(t, 0, s.NumScores())

	err := s.Release()
	assert.True(t, shared.IsMissingRecord(err), "second release must be an explicit error")

	checks := map[string]error{
		"SetScore":  s.SetScore(0, 1),
		"SetScores": s.SetScores(1),
	}
	_, checks["Score"] = s.Score(0)
	_, checks["Scores"] = s.Scores()
	_, checks["Average"] = s.Average()

	for op, err := range checks {
		assert.True(t, errors.Is(err, shared.ErrMissingRecord), "%s after release: %v", op, err)
	}
}

func TestAttach(t *testing.T) {
	s := newTestStudent(t, "Alice", 1)
	assert.False(t, s.IsAttached())

	require.NoError(t, s.Attach())
	assert.True(t, s.IsAttached())

	err := s.Attach()
	assert.ErrorIs(t, err, shared.ErrStudentAttached)
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	require.NoError(t, s.Release())
	assert.False(t, s.IsAttached())
	assert.True(t, shared.IsMissingRecord(s.Attach()))
}
