package domain

type PlayerID int

const (
	Empty    PlayerID = 0
	Engine   PlayerID = 1
	Opponent PlayerID = 2
)

// Other returns the side that moves after p.
func (p PlayerID) Other() PlayerID {
	if p == Engine {
		return Opponent
	}
	return Engine
}

func (p PlayerID) String() string {
	switch p {
	case Engine:
		return "engine"
	case Opponent:
		return "opponent"
	default:
		return "empty"
	}
}

// board dimensions are fixed at compile time
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn      Error = "invalid column"
	ErrColumnFull         Error = "column is full"
	ErrGameAlreadyDecided Error = "game already decided"
	ErrInvalidPlayer      Error = "invalid player"
)
