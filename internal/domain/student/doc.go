// Package student содержит доменную модель студента.
//
// Пакет определяет:
//
//   - Сущность Student: имя, возраст и фиксированный набор оценок
//   - Фабрику NewStudent с валидацией параметров
//   - Функцию CalculateAverage для подсчёта среднего
//
// # Владение данными
//
// Student единолично владеет своим именем и оценками. Имя копируется при
// создании, оценки отдаются наружу только копией. Release освобождает всё
// за один шаг; после этого любая операция возвращает ошибку
// shared.ErrMissingRecord.
//
// # Пример использования
//
//	s, err := NewStudent(NewStudentParams{
//	    Name:      "Alice",
//	    Age:       20,
//	    NumScores: 3,
//	})
//	if err != nil {
//	    return err
//	}
//
//	if err := s.SetScores(85, 90, 88); err != nil {
//	    return err
//	}
//
//	avg, err := s.Average() // 87.666...
package student
