// Package registry содержит реестр студентов фиксированного размера.
// Каждая позиция реестра - слот, который либо пуст, либо хранит запись.
package registry

import (
	"github.com/alem-hub/student-registry/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// SLOT STATE
// ══════════════════════════════════════════════════════════════════════════════

// SlotState определяет состояние слота.
type SlotState string

const (
	// SlotEmpty - в слоте нет записи.
	SlotEmpty SlotState = "empty"
	// SlotPopulated - в слоте лежит валидный студент.
	SlotPopulated SlotState = "populated"
)

// String возвращает строковое представление состояния.
func (s SlotState) String() string {
	return string(s)
}

// Slot - одна позиция реестра.
// Нулевое значение Slot - пустой слот. Слот с уже освобождённой записью
// тоже считается пустым.
type Slot struct {
	student *student.Student
}

// State возвращает текущее состояние слота.
func (s Slot) State() SlotState {
	if s.IsEmpty() {
		return SlotEmpty
	}
	return SlotPopulated
}

// IsEmpty возвращает true, если в слоте нет живой записи.
func (s Slot) IsEmpty() bool {
	return s.student == nil || s.student.IsReleased()
}

// Student возвращает запись и флаг её наличия.
// Потребитель обязан проверить флаг.
func (s Slot) Student() (*student.Student, bool) {
	if s.IsEmpty() {
		return nil, false
	}
	return s.student, true
}
