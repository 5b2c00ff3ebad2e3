package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/uid"
)

const (
	ErrSessionNotFound domain.Error = "game not found"
	ErrNotYourTurn     domain.Error = "not your turn"
)

// MaxBoardSide bounds rows and cols of a hosted game.
const MaxBoardSide = 12

// NewGameOptions configures a single-player game against the engine.
type NewGameOptions struct {
	Rows       int
	Cols       int
	Difficulty string
	HumanFirst bool
}

// MoveChooser picks the engine's column for the side to move.
type MoveChooser interface {
	ChooseMove(g *domain.Game) (int, error)
}

// MoveRecord is one applied drop inside a MoveOutcome.
type MoveRecord struct {
	Column int             `json:"column"`
	Row    int             `json:"row"`
	Player domain.PlayerID `json:"player"`
}

// StateView is the read-only picture of a session handed to transports.
type StateView struct {
	GameID        string            `json:"gameId"`
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	Board         [][]int           `json:"board"`
	CurrentPlayer domain.PlayerID   `json:"currentPlayer"`
	HumanPlayer   domain.PlayerID   `json:"humanPlayer"`
	Status        domain.GameStatus `json:"status"`
	Winner        domain.PlayerID   `json:"winner"`
	WinningCells  []domain.Position `json:"winningCells,omitempty"`
	LastMove      *domain.Position  `json:"lastMove,omitempty"`
	MoveCount     int               `json:"moveCount"`
	Difficulty    string            `json:"difficulty"`
}

// MoveOutcome reports the human drop and, if the game went on, the reply.
type MoveOutcome struct {
	Human *MoveRecord `json:"human"`
	Bot   *MoveRecord `json:"bot,omitempty"`
	State StateView   `json:"state"`
}

type GameSession struct {
	GameID       string
	Game         *domain.Game
	HumanPlayer  domain.PlayerID
	Difficulty   bot.BotDifficulty
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time
	engine       MoveChooser
	rows         int
	cols         int
	mu           sync.Mutex
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	now     func() time.Time
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		now:     time.Now,
	}
}

func (sm *SessionManager) CreateSession(opts NewGameOptions) (*GameSession, error) {
	if opts.Rows > MaxBoardSide || opts.Cols > MaxBoardSide {
		return nil, domain.ErrInvalidDimensions
	}
	newGame, err := domain.NewGame(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}

	difficulty := bot.ParseDifficulty(opts.Difficulty)
	human := domain.Player1
	if !opts.HumanFirst {
		human = domain.Player2
	}

	now := sm.now()
	gs := &GameSession{
		GameID:       uid.GenerateGameID(),
		Game:         newGame,
		HumanPlayer:  human,
		Difficulty:   difficulty,
		CreatedAt:    now,
		LastActivity: now,
		engine:       bot.NewEngine(difficulty.Depth()),
		rows:         opts.Rows,
		cols:         opts.Cols,
	}

	if err := gs.playBotIfDue(now); err != nil {
		return nil, err
	}

	sm.mu.Lock()
	sm.Session[gs.GameID] = gs
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s: %dx%d, difficulty %s, human plays %s",
		gs.GameID, opts.Rows, opts.Cols, difficulty, human)
	return gs, nil
}

func (sm *SessionManager) GetSession(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return ErrSessionNotFound
	}

	log.Printf("[SESSION] Removing session %s", gameID)
	delete(sm.Session, gameID)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

// CleanupIdleSessions drops sessions nobody touched for longer than ttl.
// Finished games are kept for a tenth of that so players can still read the
// final board.
func (sm *SessionManager) CleanupIdleSessions(ttl time.Duration, now time.Time) int {
	// Snapshot the registry first: a session lock can be held for a whole
	// engine search and must never be waited on under sm.mu.
	sm.mu.RLock()
	sessions := make(map[string]*GameSession, len(sm.Session))
	for gameID, session := range sm.Session {
		sessions[gameID] = session
	}
	sm.mu.RUnlock()

	stale := make(map[string]*GameSession)
	for gameID, session := range sessions {
		session.mu.Lock()
		idle := now.Sub(session.LastActivity)
		finished := session.Game.IsFinished()
		session.mu.Unlock()

		if idle > ttl || (finished && idle > ttl/10) {
			stale[gameID] = session
		}
	}

	count := 0
	sm.mu.Lock()
	for gameID, session := range stale {
		// skip IDs that were removed or replaced meanwhile
		if sm.Session[gameID] == session {
			delete(sm.Session, gameID)
			count++
		}
	}
	sm.mu.Unlock()

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}

// HandleMove applies the human drop and lets the engine answer if the game
// is still running. If the reply fails the outcome still carries the human
// drop, returned together with the error.
func (gs *GameSession) HandleMove(column int) (*MoveOutcome, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return nil, domain.ErrGameFinished
	}
	if gs.Game.CurrentPlayer != gs.HumanPlayer {
		return nil, ErrNotYourTurn
	}

	now := time.Now()
	res, err := gs.Game.Drop(column)
	if err != nil {
		return nil, err
	}
	gs.LastActivity = now

	outcome := &MoveOutcome{
		Human: &MoveRecord{Column: res.Column, Row: res.Row, Player: res.Player},
	}

	if res.Ended {
		gs.finish(now)
	} else {
		reply, err := gs.botMove(now)
		if err != nil {
			// The human drop stands, report it along with the failure.
			outcome.State = gs.snapshotLocked()
			return outcome, err
		}
		outcome.Bot = reply
	}

	outcome.State = gs.snapshotLocked()
	return outcome, nil
}

// Restart swaps in a brand new game, keeping the ID, size and difficulty.
func (gs *GameSession) Restart() (StateView, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	newGame, err := domain.NewGame(gs.rows, gs.cols)
	if err != nil {
		return StateView{}, err
	}
	now := time.Now()
	gs.Game = newGame
	gs.FinishedAt = time.Time{}
	gs.LastActivity = now

	if err := gs.playBotIfDue(now); err != nil {
		return StateView{}, err
	}

	log.Printf("[GAME] Session %s restarted", gs.GameID)
	return gs.snapshotLocked(), nil
}

// Hint returns the column the engine would play for the human.
func (gs *GameSession) Hint() (int, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.LastActivity = time.Now()
	if gs.Game.CurrentPlayer != gs.HumanPlayer && !gs.Game.IsFinished() {
		return -1, ErrNotYourTurn
	}
	return gs.engine.ChooseMove(gs.Game)
}

// Snapshot also counts as activity, so a client that only polls is kept alive.
func (gs *GameSession) Snapshot() StateView {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.LastActivity = time.Now()
	return gs.snapshotLocked()
}

func (gs *GameSession) playBotIfDue(now time.Time) error {
	if gs.Game.IsFinished() || gs.Game.CurrentPlayer == gs.HumanPlayer {
		return nil
	}
	_, err := gs.botMove(now)
	return err
}

// botMove asks the engine for a column and applies it (caller holds gs.mu).
func (gs *GameSession) botMove(now time.Time) (*MoveRecord, error) {
	column, err := gs.engine.ChooseMove(gs.Game)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	res, err := gs.Game.Drop(column)
	if err != nil {
		return nil, fmt.Errorf("engine picked column %d: %w", column, err)
	}
	if res.Ended {
		gs.finish(now)
	}
	return &MoveRecord{Column: res.Column, Row: res.Row, Player: res.Player}, nil
}

func (gs *GameSession) finish(now time.Time) {
	gs.FinishedAt = now
	switch {
	case gs.Game.IsDraw():
		log.Printf("[GAME] Session %s ended in a draw after %d moves", gs.GameID, gs.Game.MoveCount)
	case gs.Game.Winner == gs.HumanPlayer:
		log.Printf("[GAME] Session %s won by the human after %d moves", gs.GameID, gs.Game.MoveCount)
	default:
		log.Printf("[GAME] Session %s won by the engine after %d moves", gs.GameID, gs.Game.MoveCount)
	}
}

func (gs *GameSession) snapshotLocked() StateView {
	var lastMove *domain.Position
	if gs.Game.LastMove != nil {
		lm := *gs.Game.LastMove
		lastMove = &lm
	}
	return StateView{
		GameID:        gs.GameID,
		Rows:          gs.rows,
		Cols:          gs.cols,
		Board:         gs.Game.Board.Ints(),
		CurrentPlayer: gs.Game.CurrentPlayer,
		HumanPlayer:   gs.HumanPlayer,
		Status:        gs.Game.Status,
		Winner:        gs.Game.Winner,
		WinningCells:  gs.Game.WinningLine(),
		LastMove:      lastMove,
		MoveCount:     gs.Game.MoveCount,
		Difficulty:    string(gs.Difficulty),
	}
}

// IsClientError reports whether err stems from a bad request rather than a
// fault on our side.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidColumn) ||
		errors.Is(err, domain.ErrColumnFull) ||
		errors.Is(err, domain.ErrGameFinished) ||
		errors.Is(err, domain.ErrInvalidDimensions) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, bot.ErrNoLegalMove) ||
		errors.Is(err, ErrSessionNotFound)
}
