package bot

import (
	"math"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	DefaultDepth = 4

	NEG_INF = math.MinInt
	POS_INF = math.MaxInt
)

const ErrNoLegalMove domain.Error = "no legal move"

// Engine picks columns for the computer side. It holds no board state of
// its own, so one Engine can serve any number of games.
type Engine struct {
	Depth int
}

// NewEngine returns an engine searching depth plies below each candidate
// move. Non-positive depths fall back to DefaultDepth.
func NewEngine(depth int) *Engine {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Engine{Depth: depth}
}

// ChooseMove returns the column CurrentPlayer should play. The game is only
// read.
func (e *Engine) ChooseMove(g *domain.Game) (int, error) {
	if g.IsFinished() {
		return -1, ErrNoLegalMove
	}
	return e.BestMove(g.Board, g.CurrentPlayer)
}

// BestMove tries every legal column in ascending order and keeps the first
// one with the strictly highest minimax score.
func (e *Engine) BestMove(board *domain.Board, player domain.PlayerID) (int, error) {
	s := newSearcher(board, player)

	bestCol := -1
	bestScore := NEG_INF
	for col := 0; col < s.board.Cols(); col++ {
		if !s.board.IsValidMove(col) {
			continue
		}
		s.board.DropDisk(col, player)
		score := s.minimax(e.Depth, NEG_INF, POS_INF, false)
		s.board.UndoDrop(col)

		if bestCol < 0 || score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	if bestCol < 0 {
		return -1, ErrNoLegalMove
	}
	return bestCol, nil
}

// Search runs alpha-beta minimax from board, scoring leaves for player.
// board is copied first and left untouched.
func (e *Engine) Search(board *domain.Board, player domain.PlayerID, depth, alpha, beta int, maximizing bool) int {
	return newSearcher(board, player).minimax(depth, alpha, beta, maximizing)
}
