package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

// searcher owns a scratch board for the duration of one search. Moves are
// made and unmade on it, never on a live game.
type searcher struct {
	board  *domain.Board
	player domain.PlayerID // side the score is computed for
}

func newSearcher(board *domain.Board, player domain.PlayerID) *searcher {
	return &searcher{board: board.Clone(), player: player}
}

// minimax implements the minimax algorithm with alpha-beta pruning. The
// maximizing side drops s.player's pieces, the minimizing side drops the
// opponent's, and leaves are always scored for s.player.
func (s *searcher) minimax(depth, alpha, beta int, isMaximizing bool) int {
	if depth == 0 || s.board.HasWin() || s.board.IsFull() {
		return Evaluate(s.board, s.player)
	}

	if isMaximizing {
		maxEval := NEG_INF
		for col := 0; col < s.board.Cols(); col++ {
			if !s.board.IsValidMove(col) {
				continue
			}
			s.board.DropDisk(col, s.player)
			eval := s.minimax(depth-1, alpha, beta, false)
			s.board.UndoDrop(col)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // Beta cutoff
			}
		}
		return maxEval
	}

	minEval := POS_INF
	opponent := s.player.Opponent()
	for col := 0; col < s.board.Cols(); col++ {
		if !s.board.IsValidMove(col) {
			continue
		}
		s.board.DropDisk(col, opponent)
		eval := s.minimax(depth-1, alpha, beta, true)
		s.board.UndoDrop(col)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	return minEval
}
