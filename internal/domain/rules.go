package domain

// directions are scanned in this order, so when one drop completes several
// lines the horizontal one is reported first.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// WinningLine checks only the lines passing through (row, col). Every
// window of ToWin cells that contains the anchor is tried, so the win is
// found no matter which cell of the run was placed last.
func (b *Board) WinningLine(row, col int) ([]Position, bool) {
	player := b.At(row, col)
	if player == Empty {
		return nil, false
	}

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for offset := ToWin - 1; offset >= 0; offset-- {
			startRow, startCol := row-offset*dRow, col-offset*dCol
			if b.runOf(startRow, startCol, dRow, dCol, player) {
				line := make([]Position, ToWin)
				for i := range line {
					line[i] = Position{Row: startRow + i*dRow, Col: startCol + i*dCol}
				}
				return line, true
			}
		}
	}

	return nil, false
}

func (b *Board) runOf(row, col, dRow, dCol int, player PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		r, c := row+i*dRow, col+i*dCol
		if !b.InBounds(r, c) || b.cells[r][c] != player {
			return false
		}
	}
	return true
}

// HasWin scans every occupied cell, for positions where the last move is
// not known.
func (b *Board) HasWin() bool {
	_, _, ok := b.FindWin()
	return ok
}

// FindWin returns the owner and cells of the first run found in row-major
// order.
func (b *Board) FindWin() (PlayerID, []Position, bool) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.cells[row][col] == Empty {
				continue
			}
			if line, ok := b.WinningLine(row, col); ok {
				return b.cells[row][col], line, true
			}
		}
	}
	return Empty, nil, false
}
