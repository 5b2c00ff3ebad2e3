package bot

import (
	"testing"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	P = domain.Player1
	O = domain.Player2
	E = domain.Empty
)

func TestEvaluateWindow(t *testing.T) {
	tests := []struct {
		name string
		w    window
		want int
	}{
		{"four", window{P, P, P, P}, 100},
		{"closed three", window{P, P, P, E}, 10},
		{"closed three gap first", window{E, P, P, P}, 10},
		{"open three", window{P, E, P, P}, 30},
		{"open three gap at 2", window{P, P, E, P}, 30},
		{"two", window{P, E, P, E}, 5},
		{"one", window{E, E, P, E}, 1},
		{"empty", window{E, E, E, E}, 0},
		{"opponent closed three", window{O, O, O, E}, -50},
		{"opponent open three", window{O, E, O, O}, -90},
		{"opponent two", window{O, O, E, E}, -10},
		{"opponent four", window{O, O, O, O}, 0},
		{"opponent one", window{O, E, E, E}, 0},
		{"mixed", window{P, O, E, E}, 0},
		{"blocked three", window{P, P, P, O}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluateWindow(tt.w, P); got != tt.want {
				t.Fatalf("evaluateWindow(%v) = %d, want %d", tt.w, got, tt.want)
			}
		})
	}
}

func TestEvaluateIsFromTheGivenSide(t *testing.T) {
	g := gameAfter(t, 3)

	// The lone centre piece sits in 4 horizontal, 1 vertical and 2 diagonal windows.
	if got := Evaluate(g.Board, domain.Player1); got != 7 {
		t.Fatalf("Evaluate for owner = %d, want 7", got)
	}
	if got := Evaluate(g.Board, domain.Player2); got != 0 {
		t.Fatalf("Evaluate for opponent = %d, want 0", got)
	}
}

func TestEvaluateMidgamePosition(t *testing.T) {
	g := gameAfter(t, 3, 3, 4, 4, 2)

	if got := Evaluate(g.Board, domain.Player1); got != 2 {
		t.Fatalf("Evaluate(Player1) = %d, want 2", got)
	}
	if got := Evaluate(g.Board, domain.Player2); got != -98 {
		t.Fatalf("Evaluate(Player2) = %d, want -98", got)
	}
}

func TestEvaluateEmptyAndSmallBoards(t *testing.T) {
	if got := Evaluate(domain.NewDefaultGame().Board, domain.Player1); got != 0 {
		t.Fatalf("empty board scored %d", got)
	}

	// No window fits on a 3x3 board.
	g, err := domain.NewGame(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	mustDrop(t, g, 0, 1, 2)
	if got := Evaluate(g.Board, domain.Player1); got != 0 {
		t.Fatalf("3x3 board scored %d", got)
	}
}

func gameAfter(t *testing.T, columns ...int) *domain.Game {
	t.Helper()
	g := domain.NewDefaultGame()
	mustDrop(t, g, columns...)
	return g
}

func mustDrop(t *testing.T, g *domain.Game, columns ...int) {
	t.Helper()
	for _, col := range columns {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d): %v", col, err)
		}
	}
}
