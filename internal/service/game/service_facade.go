package game

import "github.com/iamasit07/connect4-ai/internal/domain"

// MoveResult describes what one call did to the game. Position fields that
// do not apply are -1.
type MoveResult struct {
	Outcome        domain.Outcome
	OpponentColumn int
	OpponentRow    int
	EngineColumn   int
	EngineRow      int
	// Err says why the move was rejected.
	Err error
}

func rejected(err error) MoveResult {
	return MoveResult{
		Outcome:        domain.Rejected,
		OpponentColumn: -1,
		OpponentRow:    -1,
		EngineColumn:   -1,
		EngineRow:      -1,
		Err:            err,
	}
}

func (r MoveResult) IsRejected() bool {
	return r.Outcome == domain.Rejected
}

// Ints flattens the result to [outcome, opponentColumn, opponentRow,
// engineColumn, engineRow] for callers that render from plain numbers.
func (r MoveResult) Ints() [5]int {
	return [5]int{int(r.Outcome), r.OpponentColumn, r.OpponentRow, r.EngineColumn, r.EngineRow}
}
