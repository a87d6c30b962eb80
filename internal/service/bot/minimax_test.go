package bot

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// centerEvaluator is deterministic so pruned and unpruned searches can be
// compared. Its scores stay well inside [-SimulationSize, SimulationSize].
type centerEvaluator struct{}

func (centerEvaluator) Evaluate(b *domain.Board, toMove domain.PlayerID) int {
	weights := [domain.Columns]int{1, 2, 3, 4, 3, 2, 1}
	score := 0
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r < b.Height(c); r++ {
			if b.Cell(c, r) == domain.Engine {
				score += weights[c]
			} else {
				score -= weights[c]
			}
		}
	}
	if toMove == domain.Engine {
		score++
	} else {
		score--
	}
	return score
}

// fullMinimax scores the position without pruning, using the same terminal
// scoring as the engine.
func fullMinimax(e *Engine, b *domain.Board, depth int, toMove domain.PlayerID) int {
	if b.IsFull() {
		return 0
	}
	if depth == 0 {
		return e.evaluator.Evaluate(b, toMove)
	}

	best := math.MaxInt
	if toMove == domain.Engine {
		best = math.MinInt
	}
	for col := 0; col < domain.Columns; col++ {
		if b.Height(col) == domain.Rows {
			continue
		}
		row := b.Drop(col, toMove)
		if domain.CheckWin(b, col, row) {
			b.Undo(col)
			if toMove == domain.Engine {
				return e.simulations + depth
			}
			return -(e.simulations + depth)
		}
		val := fullMinimax(e, b, depth-1, toMove.Other())
		b.Undo(col)
		if toMove == domain.Engine {
			best = max(best, val)
		} else {
			best = min(best, val)
		}
	}
	return best
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 7))
	for i := 0; i < 25; i++ {
		b := randomPosition(rng, 4+rng.IntN(14))
		for _, depth := range []int{1, 2, 4} {
			e := NewEngine(WithSeed(uint64(i)), WithSearchDepth(depth), WithEvaluator(centerEvaluator{}))
			want := fullMinimax(e, b, depth, domain.Engine)

			before := *b
			col, got := e.BestMove(b)
			require.Equal(t, before, *b, "search must restore the board")
			require.Equal(t, want, got, "position %d depth %d", i, depth)

			// the chosen column must actually achieve the score
			if got <= SimulationSize {
				row := b.Drop(col, domain.Engine)
				require.False(t, domain.CheckWin(b, col, row))
				assert.Equal(t, want, fullMinimax(e, b, depth-1, domain.Opponent))
				b.Undo(col)
			}
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	b := domain.NewBoard()
	e := NewEngine(WithSeed(3), WithSearchDepth(5), WithEvaluator(centerEvaluator{}))
	e.BestMove(b)

	// 7 + 7^2 + ... + 7^5 moves without pruning
	assert.Less(t, e.Nodes(), 19607)
	assert.Positive(t, e.Nodes())
}

func TestBestMoveTakesImmediateWin(t *testing.T) {
	E, O := domain.Engine, domain.Opponent
	b := boardWith(t, move{3, E}, move{0, O}, move{3, E}, move{0, O}, move{3, E}, move{0, O})

	e := NewEngine(WithSeed(1), WithSearchDepth(3), WithSimulations(20))
	before := *b
	col, score := e.BestMove(b)

	assert.Equal(t, 3, col)
	assert.Equal(t, 20+3, score)
	assert.Greater(t, score, e.Simulations())
	assert.Equal(t, before, *b)
}

func TestBestMoveBlocksThreat(t *testing.T) {
	E, O := domain.Engine, domain.Opponent
	b := boardWith(t, move{0, O}, move{6, E}, move{1, O}, move{6, E}, move{2, O})

	for seed := uint64(0); seed < 5; seed++ {
		e := NewEngine(WithSeed(seed), WithSearchDepth(2), WithSimulations(10))
		col, score := e.BestMove(b)
		assert.Equal(t, 3, col, "seed %d", seed)
		assert.GreaterOrEqual(t, score, -10)
	}
}

func TestBestMoveForcedLossScore(t *testing.T) {
	E, O := domain.Engine, domain.Opponent
	// open three on the bottom row: both ends are winning squares
	b := boardWith(t, move{1, O}, move{1, E}, move{2, O}, move{2, E}, move{3, O}, move{5, E})

	e := NewEngine(WithSeed(8), WithSearchDepth(3), WithSimulations(20))
	_, score := e.BestMove(b)
	assert.Equal(t, -(20 + 2), score)
	assert.Less(t, score, -e.Simulations())
}

func TestBestMoveOnFullBoard(t *testing.T) {
	shift := [domain.Columns]int{0, 0, 1, 1, 0, 0, 1}
	b := domain.NewBoard()
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r < domain.Rows; r++ {
			if (r+shift[c])%2 == 0 {
				b.Drop(c, domain.Engine)
			} else {
				b.Drop(c, domain.Opponent)
			}
		}
	}

	col, score := NewEngine(WithSeed(1)).BestMove(b)
	assert.Equal(t, -1, col)
	assert.Equal(t, 0, score)
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, SearchDepth, e.Depth())
	assert.Equal(t, SimulationSize, e.Simulations())
	assert.NotNil(t, e.Rand())
	assert.IsType(t, &MonteCarlo{}, e.evaluator)

	e = NewEngine(WithSearchDepth(0), WithSimulations(-3))
	assert.Equal(t, 1, e.Depth())
	assert.Equal(t, 1, e.Simulations())
}
