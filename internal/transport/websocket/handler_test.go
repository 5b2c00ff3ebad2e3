package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

type reply struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	GameID  string          `json:"gameId"`
	Column  *int            `json:"column"`
	Payload json.RawMessage `json:"payload"`
}

func dial(t *testing.T) (*websocket.Conn, *game.SessionManager) {
	t.Helper()
	sm := game.NewSessionManager()
	h := NewHandler(sm, game.NewGameOptions{Rows: 6, Cols: 7, Difficulty: "hard", HumanFirst: true}, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, sm
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) reply {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var r reply
	if err := conn.ReadJSON(&r); err != nil {
		t.Fatalf("read: %v", err)
	}
	return r
}

func TestLivePlay(t *testing.T) {
	conn, sm := dial(t)

	r := roundTrip(t, conn, map[string]any{"type": "new_game"})
	if r.Type != domain.MsgGameState || r.GameID == "" {
		t.Fatalf("new_game reply %+v", r)
	}
	if _, ok := sm.GetSession(r.GameID); !ok {
		t.Fatal("session not created")
	}
	gameID := r.GameID

	r = roundTrip(t, conn, map[string]any{"type": "hint"})
	if r.Type != domain.MsgHint || r.Column == nil || *r.Column != 2 {
		t.Fatalf("hint reply %+v", r)
	}

	r = roundTrip(t, conn, map[string]any{"type": "make_move", "column": 3})
	if r.Type != domain.MsgGameState {
		t.Fatalf("make_move reply %+v", r)
	}
	var outcome game.MoveOutcome
	if err := json.Unmarshal(r.Payload, &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Bot == nil || outcome.Bot.Column != 3 || outcome.State.MoveCount != 2 {
		t.Fatalf("outcome %+v", outcome)
	}

	r = roundTrip(t, conn, map[string]any{"type": "restart"})
	var state game.StateView
	if err := json.Unmarshal(r.Payload, &state); err != nil {
		t.Fatal(err)
	}
	if state.GameID != gameID || state.MoveCount != 0 {
		t.Fatalf("restart state %+v", state)
	}
}

func TestLivePlayErrors(t *testing.T) {
	conn, _ := dial(t)

	r := roundTrip(t, conn, map[string]any{"type": "make_move", "column": 0})
	if r.Type != domain.MsgError || r.Message != game.ErrSessionNotFound.Error() {
		t.Fatalf("move without game: %+v", r)
	}

	r = roundTrip(t, conn, map[string]any{"type": "dance"})
	if r.Type != domain.MsgError {
		t.Fatalf("unknown type: %+v", r)
	}

	roundTrip(t, conn, map[string]any{"type": "new_game"})
	r = roundTrip(t, conn, map[string]any{"type": "make_move", "column": 42})
	if r.Type != domain.MsgError || r.Message != domain.ErrInvalidColumn.Error() {
		t.Fatalf("bad column: %+v", r)
	}
	r = roundTrip(t, conn, map[string]any{"type": "make_move"})
	if r.Type != domain.MsgError {
		t.Fatalf("missing column: %+v", r)
	}
}

func TestResumeExistingGame(t *testing.T) {
	conn, sm := dial(t)
	session, err := sm.CreateSession(game.NewGameOptions{Rows: 6, Cols: 7, HumanFirst: false})
	if err != nil {
		t.Fatal(err)
	}

	r := roundTrip(t, conn, map[string]any{"type": "resume", "gameId": session.GameID})
	var state game.StateView
	if err := json.Unmarshal(r.Payload, &state); err != nil {
		t.Fatal(err)
	}
	if r.Type != domain.MsgGameState || state.MoveCount != 1 {
		t.Fatalf("resume reply %+v / %+v", r, state)
	}
}
