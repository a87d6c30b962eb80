package domain

// Board is a fixed-size grid stored as [column][row], row 0 at the bottom.
// It is mutated in place by the search through paired Drop/Undo calls and
// must not be shared between goroutines.
type Board struct {
	cells       [Columns][Rows]PlayerID
	heights     [Columns]int
	openColumns int
	moves       int
}

func NewBoard() *Board {
	return &Board{openColumns: Columns}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// TryDrop validates the column and drops a tile for player.
// It returns the row the tile landed on.
func (b *Board) TryDrop(column int, player PlayerID) (int, error) {
	if !IsValidColumn(column) {
		return -1, ErrInvalidColumn
	}
	if b.heights[column] == Rows {
		return -1, ErrColumnFull
	}
	return b.Drop(column, player), nil
}

// Drop places a tile without any checks. The column must have space.
func (b *Board) Drop(column int, player PlayerID) int {
	row := b.heights[column]
	b.cells[column][row] = player
	b.heights[column]++
	if b.heights[column] == Rows {
		b.openColumns--
	}
	b.moves++
	return row
}

// Undo removes the top tile of column. The caller must only undo the tile
// it placed most recently.
func (b *Board) Undo(column int) {
	if b.heights[column] == Rows {
		b.openColumns++
	}
	b.heights[column]--
	b.cells[column][b.heights[column]] = Empty
	b.moves--
}

func (b *Board) Cell(column, row int) PlayerID {
	return b.cells[column][row]
}

func (b *Board) Height(column int) int {
	return b.heights[column]
}

func (b *Board) OpenColumns() int {
	return b.openColumns
}

func (b *Board) IsFull() bool {
	return b.openColumns == 0
}

func (b *Board) MoveCount() int {
	return b.moves
}

// Cells returns a copy of the grid for rendering.
func (b *Board) Cells() [Columns][Rows]PlayerID {
	return b.cells
}

// this counts the number of disks of player in a specific direction,
// starting next to (column, row)
func CountDiskInDirection(b *Board, column, row, deltaCol, deltaRow int, player PlayerID) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for c >= 0 && c < Columns && r >= 0 && r < Rows && b.cells[c][r] == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}
