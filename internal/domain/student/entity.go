// Package student содержит доменную модель студента и его оценок.
// Это ядро бизнес-логики - здесь нет инфраструктурных зависимостей.
package student

import (
	"strings"

	"github.com/alem-hub/student-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - запись о студенте: имя, возраст и фиксированный набор оценок.
//
// Все поля неэкспортируемые: имя и оценки принадлежат только этой записи
// и наружу отдаются копиями.
type Student struct {
	id     shared.StudentID
	name   string
	age    shared.Age
	scores []int

	// attached - запись лежит в слоте реестра (Attach).
	attached bool

	// released - запись уже освобождена (Release), любые операции запрещены.
	released bool
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams содержит параметры для создания нового студента.
type NewStudentParams struct {
	// ID - идентификатор записи. Пустой = сгенерировать новый UUID.
	ID string

	// Name - имя студента, копируется целиком.
	Name string

	// Age - возраст, не может быть отрицательным.
	Age int

	// NumScores - количество слотов под оценки.
	NumScores int
}

// NewStudent создаёт нового студента с валидацией всех полей.
// Все оценки инициализируются нулями.
func NewStudent(params NewStudentParams) (*Student, error) {
	if params.NumScores < 0 {
		return nil, shared.ErrNegativeScoreCount
	}

	age, err := shared.NewAge(params.Age)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Name) == "" {
		return nil, shared.ErrEmptyName
	}

	id := shared.GenerateStudentID()
	if params.ID != "" {
		parsed, err := shared.NewStudentID(params.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	return &Student{
		id:     id,
		name:   strings.Clone(params.Name),
		age:    age,
		scores: make([]int, params.NumScores),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID возвращает идентификатор записи.
func (s *Student) ID() shared.StudentID {
	return s.id
}

// Name возвращает имя. После Release - пустая строка.
func (s *Student) Name() string {
	return s.name
}

// Age возвращает возраст.
func (s *Student) Age() int {
	return s.age.Int()
}

// NumScores возвращает количество слотов под оценки.
func (s *Student) NumScores() int {
	return len(s.scores)
}

// IsAttached возвращает true, если запись принадлежит слоту реестра.
func (s *Student) IsAttached() bool {
	return s.attached
}

// IsReleased возвращает true, если запись уже освобождена.
func (s *Student) IsReleased() bool {
	return s.released
}

// Score возвращает оценку по индексу с проверкой границ.
func (s *Student) Score(index int) (int, error) {
	if err := s.checkIndex("Score", index); err != nil {
		return 0, err
	}
	return s.scores[index], nil
}

// Scores возвращает копию всех оценок.
func (s *Student) Scores() ([]int, error) {
	if s.released {
		return nil, shared.ErrStudentReleased
	}
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// SetScore записывает оценку в слот index.
// Индекс вне [0, NumScores) - ошибка ErrIndexOutOfRange.
func (s *Student) SetScore(index, value int) error {
	if err := s.checkIndex("SetScore", index); err != nil {
		return err
	}
	s.scores[index] = value
	return nil
}

// SetScores заполняет слоты по порядку. Если значений больше, чем слотов,
// ничего не меняется.
func (s *Student) SetScores(values ...int) error {
	if s.released {
		return shared.ErrStudentReleased
	}
	if len(values) > len(s.scores) {
		return shared.ErrTooManyScoreValues
	}
	copy(s.scores, values)
	return nil
}

// Average возвращает среднее арифметическое оценок студента.
func (s *Student) Average() (float64, error) {
	if s.released {
		return 0, shared.ErrStudentReleased
	}
	return CalculateAverage(s.scores)
}

// Attach помечает запись как принадлежащую слоту реестра.
// Запись может принадлежать только одному слоту.
func (s *Student) Attach() error {
	if s.released {
		return shared.ErrStudentReleased
	}
	if s.attached {
		return shared.ErrStudentAttached
	}
	s.attached = true
	return nil
}

// Release освобождает имя и оценки за один шаг.
// Повторный вызов возвращает ErrMissingRecord.
func (s *Student) Release() error {
	if s.released {
		return shared.ErrStudentReleased
	}
	s.name = ""
	s.scores = nil
	s.attached = false
	s.released = true
	return nil
}

func (s *Student) checkIndex(op string, index int) error {
	if s.released {
		return shared.ErrStudentReleased
	}
	if index < 0 || index >= len(s.scores) {
		return shared.Errorf("student", op, shared.ErrIndexOutOfRange,
			"score index %d not in [0, %d)", index, len(s.scores))
	}
	return nil
}
