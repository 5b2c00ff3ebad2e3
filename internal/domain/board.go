package domain

// Board is a rows x cols grid. Pieces only ever enter a column from the
// bottom, so an occupied cell always has an occupied cell beneath it.
type Board struct {
	rows  int
	cols  int
	cells [][]PlayerID
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the occupant of (row, col), Empty when out of bounds.
func (b *Board) At(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}

	// here cells[0] represents the top row (0 -> top and rows-1 -> bottom)
	return b.cells[0][column] == Empty
}

// LowestEmptyRow returns the row a piece dropped into column would land on,
// or -1 if the column is full or out of range.
func (b *Board) LowestEmptyRow(column int) int {
	if column < 0 || column >= b.cols {
		return -1
	}
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row
		}
	}
	return -1
}

func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.cols {
		return -1, ErrInvalidColumn
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	row := b.LowestEmptyRow(column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	b.cells[row][column] = player
	return row, nil
}

// UndoDrop removes the topmost piece of column. It reports false if the
// column holds no piece.
func (b *Board) UndoDrop(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}
	for row := 0; row < b.rows; row++ {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			return true
		}
	}
	return false
}

// IsFull is true once every top-row cell is taken; with gravity that means
// the whole board is taken.
func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// ValidMoves lists the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	validMoves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.cells[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, cells: b.Snapshot()}
}

func (b *Board) Snapshot() [][]PlayerID {
	grid := make([][]PlayerID, b.rows)
	for i := range b.cells {
		grid[i] = make([]PlayerID, b.cols)
		copy(grid[i], b.cells[i])
	}
	return grid
}

// Ints converts the grid to plain integers for JSON payloads.
func (b *Board) Ints() [][]int {
	grid := make([][]int, b.rows)
	for i := range b.cells {
		grid[i] = make([]int, b.cols)
		for j, cell := range b.cells[i] {
			grid[i][j] = int(cell)
		}
	}
	return grid
}
