package domain

// Outcome is the state of a game, plus Rejected for move results that
// did not change anything.
type Outcome int

const (
	Rejected    Outcome = -1
	InProgress  Outcome = 0
	EngineWin   Outcome = 1
	OpponentWin Outcome = 2
	Draw        Outcome = 3
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case InProgress:
		return "in_progress"
	case EngineWin:
		return "engine_win"
	case OpponentWin:
		return "opponent_win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (o Outcome) IsFinished() bool {
	return o == EngineWin || o == OpponentWin || o == Draw
}

// WinFor maps the player who completed a line to its outcome.
func WinFor(player PlayerID) Outcome {
	if player == Engine {
		return EngineWin
	}
	return OpponentWin
}

// OutcomeAfterDrop returns the outcome right after a tile landed on
// (column, row). A win is checked before the board is considered full.
func OutcomeAfterDrop(b *Board, column, row int) Outcome {
	if CheckWin(b, column, row) {
		return WinFor(b.cells[column][row])
	}
	if b.IsFull() {
		return Draw
	}
	return InProgress
}
