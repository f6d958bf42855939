package registry

import (
	"errors"
	"fmt"

	"github.com/alem-hub/student-registry/internal/domain/shared"
	"github.com/alem-hub/student-registry/internal/domain/student"
)

const (
	// DefaultSize - размер реестра в демонстрационном прогоне.
	DefaultSize = 3

	// MaxSize - верхняя граница размера реестра.
	MaxSize = 1024
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRY
// ══════════════════════════════════════════════════════════════════════════════

// Registry - упорядоченный набор слотов фиксированной длины.
// Реестр единолично владеет записями в своих слотах: одна запись
// не может лежать в двух слотах. Не потокобезопасен.
type Registry struct {
	slots []Slot
}

// New создаёт реестр из size пустых слотов.
func New(size int) (*Registry, error) {
	if size < 0 {
		return nil, shared.ErrNegativeCapacity
	}
	if size > MaxSize {
		return nil, shared.ErrCapacityTooLarge
	}
	return &Registry{slots: make([]Slot, size)}, nil
}

// Len возвращает количество слотов.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Populated возвращает количество заполненных слотов.
func (r *Registry) Populated() int {
	n := 0
	for _, slot := range r.slots {
		if !slot.IsEmpty() {
			n++
		}
	}
	return n
}

// Slot возвращает копию слота по индексу.
func (r *Registry) Slot(index int) (Slot, error) {
	if err := r.checkIndex("Slot", index); err != nil {
		return Slot{}, err
	}
	return r.slots[index], nil
}

// Put кладёт студента в пустой слот (Empty -> Populated).
// Занятый слот не перезаписывается; запись, уже лежащая в другом слоте,
// отклоняется с ErrInvalidState.
func (r *Registry) Put(index int, s *student.Student) error {
	if err := r.checkIndex("Put", index); err != nil {
		return err
	}
	switch {
	case s == nil:
		return shared.ErrNilStudent
	case s.IsReleased():
		return shared.ErrReleasedStudent
	case !r.slots[index].IsEmpty():
		return shared.ErrSlotOccupied
	}
	if err := s.Attach(); err != nil {
		return err
	}
	r.slots[index] = Slot{student: s}
	return nil
}

// Get возвращает студента из слота.
// Пустой слот - ошибка ErrMissingRecord.
func (r *Registry) Get(index int) (*student.Student, error) {
	if err := r.checkIndex("Get", index); err != nil {
		return nil, err
	}
	s, ok := r.slots[index].Student()
	if !ok {
		r.slots[index] = Slot{}
		return nil, shared.ErrSlotEmpty
	}
	return s, nil
}

// Release освобождает запись в слоте и делает слот пустым
// (Populated -> Empty). Повторный вызов - ошибка ErrMissingRecord.
func (r *Registry) Release(index int) error {
	s, err := r.Get(index)
	if err != nil {
		return err
	}
	r.slots[index] = Slot{}
	return s.Release()
}

// ReleaseAll освобождает все заполненные слоты и возвращает их количество.
// Ошибки отдельных слотов собираются через errors.Join; остальные слоты
// освобождаются в любом случае.
func (r *Registry) ReleaseAll() (int, error) {
	released := 0
	var errs []error
	for i := range r.slots {
		if r.slots[i].IsEmpty() {
			r.slots[i] = Slot{}
			continue
		}
		if err := r.Release(i); err != nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", i, err))
			continue
		}
		released++
	}
	return released, errors.Join(errs...)
}

func (r *Registry) checkIndex(op string, index int) error {
	if index < 0 || index >= len(r.slots) {
		return shared.Errorf("registry", op, shared.ErrIndexOutOfRange,
			"slot index %d not in [0, %d)", index, len(r.slots))
	}
	return nil
}
