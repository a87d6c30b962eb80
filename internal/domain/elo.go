package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// EngineScore is the Elo score the engine earns from a finished game:
// 1 for a win, 0.5 for a draw, 0 otherwise.
func EngineScore(o Outcome) float64 {
	switch o {
	case EngineWin:
		return 1.0
	case Draw:
		return 0.5
	default:
		return 0.0
	}
}

// CalculateElo returns the new rating for player A after one game scored
// from A's side.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(math.Round(newRating))
}
