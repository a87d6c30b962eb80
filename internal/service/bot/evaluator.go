package bot

import (
	"math/rand/v2"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Evaluator scores a position from the engine's side. Higher is better for
// the engine. toMove is the side that plays next.
type Evaluator interface {
	Evaluate(b *domain.Board, toMove domain.PlayerID) int
}

// MonteCarlo scores a position by playing random games to the end.
// Each playout adds +1 for an engine win, -1 for an opponent win and 0 for
// a draw, so scores lie in [-simulations, simulations].
type MonteCarlo struct {
	simulations int
	rng         *rand.Rand
}

func NewMonteCarlo(simulations int, rng *rand.Rand) *MonteCarlo {
	return &MonteCarlo{simulations: simulations, rng: rng}
}

// Evaluate runs the playouts. The board is restored before returning.
// The position must not already contain a winning line.
func (m *MonteCarlo) Evaluate(b *domain.Board, toMove domain.PlayerID) int {
	if b.IsFull() {
		return 0
	}
	score := 0
	for i := 0; i < m.simulations; i++ {
		score += m.playout(b, toMove)
	}
	return score
}

// playout alternates uniformly random drops starting with player until
// someone connects four or the board fills up, then undoes every drop.
func (m *MonteCarlo) playout(b *domain.Board, player domain.PlayerID) int {
	var played [domain.Rows * domain.Columns]int
	n := 0
	result := 0

	for {
		col := m.rng.IntN(domain.Columns)
		for b.Height(col) == domain.Rows {
			col = m.rng.IntN(domain.Columns)
		}
		row := b.Drop(col, player)
		played[n] = col
		n++

		if domain.CheckWin(b, col, row) {
			if player == domain.Engine {
				result = 1
			} else {
				result = -1
			}
			break
		}
		if b.IsFull() {
			break
		}
		player = player.Other()
	}

	for n > 0 {
		n--
		b.Undo(played[n])
	}
	return result
}
