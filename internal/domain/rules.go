package domain

var directions = [4][2]int{
	{0, 1},  // vertical
	{1, 0},  // horizontal
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// CheckWin reports whether the tile at (column, row) is part of ToWin or
// more aligned tiles of the same player. Only lines through that cell are
// scanned.
func CheckWin(b *Board, column, row int) bool {
	player := b.cells[column][row]
	if player == Empty {
		return false
	}

	for _, dir := range directions {
		dCol, dRow := dir[0], dir[1]
		total := 1 + CountDiskInDirection(b, column, row, dCol, dRow, player)
		if total >= ToWin {
			return true
		}
		total += CountDiskInDirection(b, column, row, -dCol, -dRow, player)
		if total >= ToWin {
			return true
		}
	}

	return false
}

// CheckWinAt checks the top tile of column, i.e. the one just dropped.
func CheckWinAt(b *Board, column int) bool {
	return CheckWin(b, column, b.heights[column]-1)
}
