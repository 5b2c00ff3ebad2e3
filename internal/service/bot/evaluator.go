package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

// Window weights, seen from the side being evaluated.
const (
	SCORE_FOUR             = 100
	SCORE_THREE            = 10
	SCORE_OPEN_THREE       = 20 // on top of SCORE_THREE when the gap is inside the window
	SCORE_TWO              = 5
	SCORE_ONE              = 1
	PENALTY_OPP_THREE      = 50
	PENALTY_OPP_OPEN_THREE = 40 // on top of PENALTY_OPP_THREE
	PENALTY_OPP_TWO        = 10
)

type window [domain.ToWin]domain.PlayerID

// Evaluate sums the score of every ToWin-long window on the board from
// player's point of view.
func Evaluate(board *domain.Board, player domain.PlayerID) int {
	rows, cols := board.Rows(), board.Cols()
	score := 0

	// horizontal
	for row := 0; row < rows; row++ {
		for col := 0; col+domain.ToWin <= cols; col++ {
			score += evaluateWindow(windowAt(board, row, col, 0, 1), player)
		}
	}

	// vertical
	for col := 0; col < cols; col++ {
		for row := 0; row+domain.ToWin <= rows; row++ {
			score += evaluateWindow(windowAt(board, row, col, 1, 0), player)
		}
	}

	// diagonal \
	for row := 0; row+domain.ToWin <= rows; row++ {
		for col := 0; col+domain.ToWin <= cols; col++ {
			score += evaluateWindow(windowAt(board, row, col, 1, 1), player)
		}
	}

	// diagonal /
	for row := domain.ToWin - 1; row < rows; row++ {
		for col := 0; col+domain.ToWin <= cols; col++ {
			score += evaluateWindow(windowAt(board, row, col, -1, 1), player)
		}
	}

	return score
}

func windowAt(board *domain.Board, row, col, dRow, dCol int) window {
	var w window
	for i := range w {
		w[i] = board.At(row+i*dRow, col+i*dCol)
	}
	return w
}

// evaluateWindow scores a single window. The open-three bonus is added on
// top of the plain three, it does not replace it.
func evaluateWindow(w window, player domain.PlayerID) int {
	opponent := player.Opponent()
	own, opp, empty := 0, 0, 0
	gap := -1
	for i, cell := range w {
		switch cell {
		case player:
			own++
		case opponent:
			opp++
		default:
			empty++
			if gap < 0 {
				gap = i
			}
		}
	}
	innerGap := gap == 1 || gap == 2

	score := 0
	switch {
	case own == 4:
		score += SCORE_FOUR
	case own == 3 && empty == 1:
		score += SCORE_THREE
	case own == 2 && empty == 2:
		score += SCORE_TWO
	}

	switch {
	case opp == 3 && empty == 1:
		score -= PENALTY_OPP_THREE
	case opp == 2 && empty == 2:
		score -= PENALTY_OPP_TWO
	}

	if own == 1 && empty == 3 {
		score += SCORE_ONE
	}

	if own == 3 && empty == 1 && innerGap {
		score += SCORE_OPEN_THREE
	}
	if opp == 3 && empty == 1 && innerGap {
		score -= PENALTY_OPP_OPEN_THREE
	}

	return score
}
