package bot

import (
	"math/rand/v2"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// AppendPlayableColumns appends every column that still has space to dst
// and shuffles the appended part, so equally scored moves are tried in an
// unpredictable order. Passing a stack buffer as dst keeps the search
// allocation free.
func AppendPlayableColumns(dst []int, b *domain.Board, rng *rand.Rand) []int {
	start := len(dst)
	for col := 0; col < domain.Columns; col++ {
		if b.Height(col) < domain.Rows {
			dst = append(dst, col)
		}
	}
	shuffle(dst[start:], rng)
	return dst
}

// Fisher-Yates
func shuffle(columns []int, rng *rand.Rand) {
	for i := len(columns) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		columns[i], columns[j] = columns[j], columns[i]
	}
}
