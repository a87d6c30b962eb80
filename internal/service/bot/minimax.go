package bot

import (
	"math"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/rs/zerolog/log"
)

// BestMove searches the position with the engine to move and returns the
// chosen column with its score. An immediate win is returned as soon as it
// is found. The board is left exactly as it was given. It returns -1 if no
// column is playable.
func (e *Engine) BestMove(b *domain.Board) (column, score int) {
	e.nodes = 0

	var buf [domain.Columns]int
	columns := AppendPlayableColumns(buf[:0], b, e.rng)
	if len(columns) == 0 {
		return -1, 0
	}

	alpha := math.MinInt
	beta := math.MaxInt
	best := columns[0]

	for _, col := range columns {
		row := b.Drop(col, domain.Engine)
		e.nodes++
		if domain.CheckWin(b, col, row) {
			b.Undo(col)
			log.Debug().Int("column", col).Int("nodes", e.nodes).Msg("immediate-win")
			return col, e.simulations + e.depth
		}

		val := e.minimize(b, alpha, beta, e.depth-1)
		b.Undo(col)
		if val > alpha {
			alpha = val
			best = col
		}
	}

	log.Debug().
		Int("column", best).
		Int("score", alpha).
		Int("depth", e.depth).
		Int("nodes", e.nodes).
		Msg("best-val")
	return best, alpha
}

// maximize is an engine-to-move node. It returns alpha, fail-hard.
func (e *Engine) maximize(b *domain.Board, alpha, beta, depth int) int {
	if b.IsFull() {
		return 0
	}
	if depth == 0 {
		return e.evaluator.Evaluate(b, domain.Engine)
	}

	var buf [domain.Columns]int
	for _, col := range AppendPlayableColumns(buf[:0], b, e.rng) {
		if alpha >= beta {
			return alpha
		}
		row := b.Drop(col, domain.Engine)
		e.nodes++
		if domain.CheckWin(b, col, row) {
			b.Undo(col)
			// quicker wins score higher
			return e.simulations + depth
		}
		val := e.minimize(b, alpha, beta, depth-1)
		b.Undo(col)
		if val > alpha {
			alpha = val
		}
	}
	return alpha
}

// minimize is an opponent-to-move node. It returns beta, fail-hard.
func (e *Engine) minimize(b *domain.Board, alpha, beta, depth int) int {
	if b.IsFull() {
		return 0
	}
	if depth == 0 {
		return e.evaluator.Evaluate(b, domain.Opponent)
	}

	var buf [domain.Columns]int
	for _, col := range AppendPlayableColumns(buf[:0], b, e.rng) {
		if alpha >= beta {
			return beta
		}
		row := b.Drop(col, domain.Opponent)
		e.nodes++
		if domain.CheckWin(b, col, row) {
			b.Undo(col)
			// quicker losses score lower
			return -(e.simulations + depth)
		}
		val := e.maximize(b, alpha, beta, depth-1)
		b.Undo(col)
		if val < beta {
			beta = val
		}
	}
	return beta
}
