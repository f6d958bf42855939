// Package presenter formats registry data for plain-text display.
package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alem-hub/student-registry/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT CARD PRESENTER
// Форматирует карточку студента: имя, возраст, оценки и среднее.
// ══════════════════════════════════════════════════════════════════════════════

// StudentCardPresenter formats student cards.
type StudentCardPresenter struct{}

// NewStudentCardPresenter создаёт новый презентер карточки студента.
func NewStudentCardPresenter() *StudentCardPresenter {
	return &StudentCardPresenter{}
}

// FormatStudentCard renders a card as three lines:
//
//	Name: Alice, Age: 20
//	Scores: 85 90 88
//	Average: 87.67
func (p *StudentCardPresenter) FormatStudentCard(dto *query.StudentCardDTO) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name: %s, Age: %d\n", dto.Name, dto.Age))
	sb.WriteString(p.formatScores(dto.Scores))
	sb.WriteString("\n")
	sb.WriteString(p.formatAverage(dto))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMissing renders the marker for an empty slot. Slots are shown 1-based.
func (p *StudentCardPresenter) FormatMissing(slot int) string {
	return fmt.Sprintf("Slot %d: <empty>\n", slot+1)
}

func (p *StudentCardPresenter) formatScores(scores []int) string {
	parts := make([]string, 0, len(scores))
	for _, score := range scores {
		parts = append(parts, strconv.Itoa(score))
	}
	if len(parts) == 0 {
		return "Scores:"
	}
	return "Scores: " + strings.Join(parts, " ")
}

func (p *StudentCardPresenter) formatAverage(dto *query.StudentCardDTO) string {
	if !dto.HasAverage {
		return "Average: n/a"
	}
	return fmt.Sprintf("Average: %.2f", dto.Average)
}
