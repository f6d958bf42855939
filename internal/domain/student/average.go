package student

import (
	"math/big"

	"github.com/alem-hub/student-registry/internal/domain/shared"
)

// CalculateAverage возвращает среднее арифметическое scores.
// Сумма считается точно (big.Int), результат - ближайший float64 к точному
// рациональному среднему. Пустой список - ErrDivideByZero.
func CalculateAverage(scores []int) (float64, error) {
	if len(scores) == 0 {
		return 0, shared.ErrNoScoresToAverage
	}

	sum := new(big.Int)
	var term big.Int
	for _, score := range scores {
		sum.Add(sum, term.SetInt64(int64(score)))
	}

	mean := new(big.Rat).SetFrac(sum, big.NewInt(int64(len(scores))))
	avg, _ := mean.Float64()
	return avg, nil
}
