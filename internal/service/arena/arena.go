// Package arena plays the engine against the easy bot to measure its
// strength. Games run in parallel but each one owns its board, engine and
// random sources, so results only depend on the seed.
package arena

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/pkg/uid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Settings struct {
	Games       int
	Workers     int
	Depth       int
	Simulations int
	Seed        uint64
}

type GameRecord struct {
	Index         int
	GameID        string
	EngineStarted bool
	Outcome       domain.Outcome
	Moves         int
}

type Summary struct {
	RunID        string
	Games        []GameRecord
	EngineWins   int
	OpponentWins int
	Draws        int
	// EngineElo starts at domain.InitialRating and is updated game by game
	// against an opponent fixed at the same rating.
	EngineElo int
}

// Run plays s.Games games, at most s.Workers at a time. The engine opens
// the even-numbered games.
func Run(ctx context.Context, s Settings) (*Summary, error) {
	if s.Games < 1 {
		return nil, fmt.Errorf("arena needs at least one game, got %d", s.Games)
	}
	if s.Workers < 1 {
		s.Workers = 1
	}

	runID := uid.GenerateRunID()
	log.Info().
		Str("run_id", runID).
		Int("games", s.Games).
		Int("workers", s.Workers).
		Int("depth", s.Depth).
		Int("simulations", s.Simulations).
		Uint64("seed", s.Seed).
		Msg("arena-start")

	records := make([]GameRecord, s.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i := 0; i < s.Games; i++ {
		g.Go(func() error {
			rec, err := playOne(ctx, s, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			records[i] = rec
			log.Debug().
				Str("run_id", runID).
				Int("game", i).
				Str("game_id", rec.GameID).
				Stringer("outcome", rec.Outcome).
				Int("moves", rec.Moves).
				Msg("arena-game")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := summarize(runID, records)
	log.Info().
		Str("run_id", runID).
		Int("engine_wins", summary.EngineWins).
		Int("opponent_wins", summary.OpponentWins).
		Int("draws", summary.Draws).
		Int("engine_elo", summary.EngineElo).
		Msg("arena-done")
	return summary, nil
}

func playOne(ctx context.Context, s Settings, index int) (GameRecord, error) {
	seed := s.Seed + uint64(index)
	engine := bot.NewEngine(
		bot.WithSeed(seed),
		bot.WithSearchDepth(s.Depth),
		bot.WithSimulations(s.Simulations),
	)
	opponentRng := rand.New(rand.NewPCG(^seed, seed))
	gm := game.NewGame(engine)

	rec := GameRecord{
		Index:         index,
		GameID:        gm.ID(),
		EngineStarted: index%2 == 0,
	}
	if rec.EngineStarted {
		gm.EngineOpensGame()
	}

	for !gm.CurrentOutcome().IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}
		col := bot.EasyMove(gm.Snapshot(), domain.Opponent, opponentRng)
		if res := gm.ApplyOpponentMove(col); res.IsRejected() {
			return GameRecord{}, fmt.Errorf("opponent move %d rejected: %w", col, res.Err)
		}
	}

	rec.Outcome = gm.CurrentOutcome()
	rec.Moves = gm.MoveCount()
	return rec, nil
}

func summarize(runID string, records []GameRecord) *Summary {
	summary := &Summary{
		RunID:     runID,
		Games:     records,
		EngineElo: domain.InitialRating,
	}
	for _, rec := range records {
		switch rec.Outcome {
		case domain.EngineWin:
			summary.EngineWins++
		case domain.OpponentWin:
			summary.OpponentWins++
		case domain.Draw:
			summary.Draws++
		}
		summary.EngineElo = domain.CalculateElo(summary.EngineElo, domain.InitialRating, domain.EngineScore(rec.Outcome))
	}
	return summary
}
