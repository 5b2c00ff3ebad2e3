package domain

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	LastMove      *Position
	WinningCells  []Position
	MoveCount     int
}

// DropResult describes a single applied drop.
type DropResult struct {
	Row    int      `json:"row"`
	Column int      `json:"column"`
	Player PlayerID `json:"player"`
	Winner PlayerID `json:"winner"`
	Ended  bool     `json:"ended"`
}

func NewGame(rows, cols int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:         board,
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

// NewDefaultGame returns a fresh 6x7 game.
func NewDefaultGame() *Game {
	g, _ := NewGame(Rows, Columns)
	return g
}

// Drop lets CurrentPlayer's piece fall into column. The turn passes to the
// other side after every successful drop, including the one that wins, so
// after a win CurrentPlayer holds the loser.
func (g *Game) Drop(column int) (DropResult, error) {
	if g.IsFinished() {
		return DropResult{}, ErrGameFinished
	}

	player := g.CurrentPlayer
	row, err := g.Board.DropDisk(column, player)
	if err != nil {
		return DropResult{}, err
	}

	g.MoveCount++
	g.LastMove = &Position{Row: row, Col: column}
	result := DropResult{Row: row, Column: column, Player: player}

	if line, won := g.Board.WinningLine(row, column); won {
		g.Status = StatusWon
		g.Winner = player
		g.WinningCells = line
		result.Winner = player
		result.Ended = true
	} else if g.Board.IsFull() {
		g.Status = StatusDraw
		result.Ended = true
	}

	g.CurrentPlayer = player.Opponent()
	return result, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// IsDraw is true when the board filled up without anyone connecting four.
func (g *Game) IsDraw() bool {
	return g.Status == StatusDraw
}

// WinningLine returns a copy of the winning cells, nil while nobody has won.
func (g *Game) WinningLine() []Position {
	if len(g.WinningCells) == 0 {
		return nil
	}
	line := make([]Position, len(g.WinningCells))
	copy(line, g.WinningCells)
	return line
}

func (g *Game) Snapshot() [][]PlayerID {
	return g.Board.Snapshot()
}
