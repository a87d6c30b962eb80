package arena

import (
	"context"
	"testing"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickSettings() Settings {
	return Settings{Games: 4, Workers: 2, Depth: 2, Simulations: 5, Seed: 11}
}

func TestRunPlaysEveryGame(t *testing.T) {
	summary, err := Run(context.Background(), quickSettings())
	require.NoError(t, err)

	require.Len(t, summary.Games, 4)
	assert.Equal(t, 4, summary.EngineWins+summary.OpponentWins+summary.Draws)
	assert.NotEmpty(t, summary.RunID)

	for i, rec := range summary.Games {
		assert.Equal(t, i, rec.Index)
		assert.NotEmpty(t, rec.GameID)
		assert.Equal(t, i%2 == 0, rec.EngineStarted)
		assert.True(t, rec.Outcome.IsFinished(), "game %d", i)
		assert.GreaterOrEqual(t, rec.Moves, 2*domain.ToWin-1)
		assert.LessOrEqual(t, rec.Moves, domain.Rows*domain.Columns)
	}
}

func TestRunIsReproducible(t *testing.T) {
	a, err := Run(context.Background(), quickSettings())
	require.NoError(t, err)
	s := quickSettings()
	s.Workers = 1
	b, err := Run(context.Background(), s)
	require.NoError(t, err)

	for i := range a.Games {
		assert.Equal(t, a.Games[i].Outcome, b.Games[i].Outcome, "game %d", i)
		assert.Equal(t, a.Games[i].Moves, b.Games[i].Moves, "game %d", i)
	}
	assert.Equal(t, a.EngineElo, b.EngineElo)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, quickSettings())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsEmptyRun(t *testing.T) {
	_, err := Run(context.Background(), Settings{})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	summary := summarize("run_test", []GameRecord{
		{Outcome: domain.EngineWin},
		{Outcome: domain.Draw},
		{Outcome: domain.OpponentWin},
		{Outcome: domain.EngineWin},
	})
	assert.Equal(t, 2, summary.EngineWins)
	assert.Equal(t, 1, summary.OpponentWins)
	assert.Equal(t, 1, summary.Draws)
	assert.Greater(t, summary.EngineElo, domain.InitialRating)
}
