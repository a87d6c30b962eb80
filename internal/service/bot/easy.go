package bot

import (
	"math/rand/v2"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// EasyMove is a cheap sparring partner: it takes an immediate win, blocks
// the other side's immediate win, and otherwise plays a random column.
// It returns -1 when the board is full.
func EasyMove(b *domain.Board, player domain.PlayerID, rng *rand.Rand) int {
	var buf [domain.Columns]int
	validColumns := AppendPlayableColumns(buf[:0], b, rng)
	if len(validColumns) == 0 {
		return -1
	}

	for _, col := range validColumns {
		if winsAt(b, col, player) {
			return col
		}
	}

	opponent := player.Other()
	for _, col := range validColumns {
		if winsAt(b, col, opponent) {
			return col
		}
	}

	// already shuffled
	return validColumns[0]
}

func winsAt(b *domain.Board, col int, player domain.PlayerID) bool {
	row := b.Drop(col, player)
	won := domain.CheckWin(b, col, row)
	b.Undo(col)
	return won
}
