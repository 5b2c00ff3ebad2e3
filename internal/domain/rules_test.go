package domain

import (
	"reflect"
	"testing"
)

func TestWinningLineFromEveryCellOfTheRun(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, b *Board)
		want  []Position
	}{
		{
			name: "horizontal",
			setup: func(t *testing.T, b *Board) {
				for col := 1; col <= 4; col++ {
					stack(t, b, col, Player1)
				}
			},
			want: []Position{{5, 1}, {5, 2}, {5, 3}, {5, 4}},
		},
		{
			name: "vertical",
			setup: func(t *testing.T, b *Board) {
				stack(t, b, 6, Player2, Player1, Player1, Player1, Player1)
			},
			want: []Position{{1, 6}, {2, 6}, {3, 6}, {4, 6}},
		},
		{
			name: "diagonal down-right",
			setup: func(t *testing.T, b *Board) {
				stack(t, b, 0, Player2, Player2, Player2, Player1)
				stack(t, b, 1, Player2, Player2, Player1)
				stack(t, b, 2, Player2, Player1)
				stack(t, b, 3, Player1)
			},
			want: []Position{{2, 0}, {3, 1}, {4, 2}, {5, 3}},
		},
		{
			name: "diagonal up-right",
			setup: func(t *testing.T, b *Board) {
				stack(t, b, 0, Player1)
				stack(t, b, 1, Player2, Player1)
				stack(t, b, 2, Player2, Player2, Player1)
				stack(t, b, 3, Player2, Player2, Player2, Player1)
			},
			want: []Position{{2, 3}, {3, 2}, {4, 1}, {5, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, Rows, Columns)
			tt.setup(t, b)

			for _, anchor := range tt.want {
				line, ok := b.WinningLine(anchor.Row, anchor.Col)
				if !ok {
					t.Fatalf("no win anchored at %v", anchor)
				}
				if !reflect.DeepEqual(line, tt.want) {
					t.Fatalf("anchored at %v got %v, want %v", anchor, line, tt.want)
				}
			}
			if !b.HasWin() {
				t.Fatal("full scan missed the win")
			}
			owner, _, _ := b.FindWin()
			if owner != Player1 {
				t.Fatalf("FindWin owner = %v, want Player1", owner)
			}
		})
	}
}

func TestHorizontalWinDetectedForEveryPlacementOrder(t *testing.T) {
	orders := [][]int{
		{1, 2, 3, 0},
		{0, 2, 3, 1},
		{0, 1, 3, 2},
		{0, 1, 2, 3},
	}
	for _, order := range orders {
		b := mustBoard(t, Rows, Columns)
		for i, col := range order {
			row, err := b.DropDisk(col, Player1)
			if err != nil {
				t.Fatal(err)
			}
			_, ok := b.WinningLine(row, col)
			if last := i == len(order)-1; ok != last {
				t.Fatalf("order %v: win after drop %d = %v", order, i, ok)
			}
		}
	}
}

func TestNoWinWithThreeInARow(t *testing.T) {
	b := mustBoard(t, Rows, Columns)
	stack(t, b, 0, Player1, Player1, Player1, Player2, Player1, Player1)
	stack(t, b, 1, Player1, Player2)
	stack(t, b, 2, Player1, Player2)
	stack(t, b, 4, Player1, Player1, Player1)
	stack(t, b, 5, Player2, Player1)

	if b.HasWin() {
		_, line, _ := b.FindWin()
		t.Fatalf("false positive win: %v", line)
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if _, ok := b.WinningLine(row, col); ok {
				t.Fatalf("false positive anchored at (%d,%d)", row, col)
			}
		}
	}
}

func TestWinningLineOnEmptyCell(t *testing.T) {
	b := mustBoard(t, Rows, Columns)
	if _, ok := b.WinningLine(5, 0); ok {
		t.Fatal("empty cell reported as a win")
	}
	if _, ok := b.WinningLine(-1, 9); ok {
		t.Fatal("out of bounds cell reported as a win")
	}
}
