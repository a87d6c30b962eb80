package game

import (
	"sync"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Game is one match between the engine and an opponent. It owns the board
// and the outcome for exactly one game. Once the outcome is decided it
// never changes and every further move is rejected.
type Game struct {
	id      string
	board   *domain.Board
	outcome domain.Outcome
	engine  *bot.Engine
	mu      sync.Mutex
}

func NewGame(engine *bot.Engine) *Game {
	if engine == nil {
		engine = bot.NewEngine()
	}
	g := &Game{
		id:      uid.GenerateGameID(),
		board:   domain.NewBoard(),
		outcome: domain.InProgress,
		engine:  engine,
	}
	log.Debug().
		Str("game_id", g.id).
		Int("depth", engine.Depth()).
		Int("simulations", engine.Simulations()).
		Msg("game-created")
	return g
}

func (g *Game) ID() string {
	return g.id
}

// PlayTile commits a tile for player without triggering an engine reply.
// It returns the row the tile landed on.
func (g *Game) PlayTile(column int, player domain.PlayerID) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playTileLocked(column, player)
}

// ApplyOpponentMove commits the opponent's drop and, if the game goes on,
// answers with the engine's move.
func (g *Game) ApplyOpponentMove(column int) MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	row, err := g.playTileLocked(column, domain.Opponent)
	if err != nil {
		return rejected(err)
	}

	result := MoveResult{
		Outcome:        g.outcome,
		OpponentColumn: column,
		OpponentRow:    row,
		EngineColumn:   -1,
		EngineRow:      -1,
	}
	if g.outcome.IsFinished() {
		return result
	}

	result.EngineColumn, result.EngineRow = g.engineMoveLocked()
	result.Outcome = g.outcome
	return result
}

// EngineOpensGame lets the engine move without a preceding opponent move.
func (g *Game) EngineOpensGame() MoveResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.outcome.IsFinished() {
		log.Debug().Str("game_id", g.id).Msg("engine move rejected: game already decided")
		return rejected(domain.ErrGameAlreadyDecided)
	}

	col, row := g.engineMoveLocked()
	return MoveResult{
		Outcome:        g.outcome,
		OpponentColumn: -1,
		OpponentRow:    -1,
		EngineColumn:   col,
		EngineRow:      row,
	}
}

// CurrentBoard returns a copy of the cells, indexed [column][row] with
// row 0 at the bottom.
func (g *Game) CurrentBoard() [domain.Columns][domain.Rows]domain.PlayerID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Cells()
}

func (g *Game) CurrentOutcome() domain.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome
}

// Snapshot returns a private copy of the board that callers may mutate.
func (g *Game) Snapshot() *domain.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := *g.board
	return &b
}

// MoveCount returns the number of tiles on the board.
func (g *Game) MoveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.MoveCount()
}

func (g *Game) playTileLocked(column int, player domain.PlayerID) (int, error) {
	if g.outcome.IsFinished() {
		return -1, domain.ErrGameAlreadyDecided
	}
	if player != domain.Engine && player != domain.Opponent {
		return -1, domain.ErrInvalidPlayer
	}

	row, err := g.board.TryDrop(column, player)
	if err != nil {
		log.Debug().
			Str("game_id", g.id).
			Stringer("player", player).
			Int("column", column).
			Err(err).
			Msg("move rejected")
		return -1, err
	}

	g.outcome = domain.OutcomeAfterDrop(g.board, column, row)
	g.logMove(player, column, row)
	return row, nil
}

// engineMoveLocked searches, commits the chosen column and updates the
// outcome. The game must still be in progress.
func (g *Game) engineMoveLocked() (int, int) {
	col, score := g.engine.BestMove(g.board)
	row := g.board.Drop(col, domain.Engine)
	g.outcome = domain.OutcomeAfterDrop(g.board, col, row)

	log.Debug().
		Str("game_id", g.id).
		Int("score", score).
		Int("nodes", g.engine.Nodes()).
		Msg("engine-search")
	g.logMove(domain.Engine, col, row)
	return col, row
}

func (g *Game) logMove(player domain.PlayerID, column, row int) {
	ev := log.Debug()
	if g.outcome.IsFinished() {
		ev = log.Info()
	}
	ev.Str("game_id", g.id).
		Stringer("player", player).
		Int("column", column).
		Int("row", row).
		Stringer("outcome", g.outcome).
		Msg("tile-dropped")
}
