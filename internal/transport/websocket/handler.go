package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/game"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	SessionManager *game.SessionManager
	Defaults       game.NewGameOptions
	Upgrader       websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to
// accept every origin.
func NewHandler(sm *game.SessionManager, defaults game.NewGameOptions, checkOrigin func(*http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Handler{
		SessionManager: sm,
		Defaults:       defaults,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	c := newClient(conn)
	defer conn.Close()

	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// Keep-alive pinger
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			c.sendError("", "Invalid message format")
			continue
		}

		h.processMessage(c, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(c *client, msg domain.ClientMessage) {
	switch msg.Type {
	case domain.MsgNewGame:
		opts := h.Defaults
		if msg.Rows != 0 {
			opts.Rows = msg.Rows
		}
		if msg.Cols != 0 {
			opts.Cols = msg.Cols
		}
		if msg.Difficulty != "" {
			opts.Difficulty = msg.Difficulty
		}
		if msg.HumanFirst != nil {
			opts.HumanFirst = *msg.HumanFirst
		}

		session, err := h.SessionManager.CreateSession(opts)
		if err != nil {
			c.sendError("", err.Error())
			return
		}
		c.gameID = session.GameID
		h.sendState(c, session.Snapshot())

	case domain.MsgResume:
		session, ok := h.SessionManager.GetSession(msg.GameID)
		if !ok {
			c.sendError(msg.GameID, game.ErrSessionNotFound.Error())
			return
		}
		c.gameID = session.GameID
		h.sendState(c, session.Snapshot())

	case domain.MsgMakeMove:
		session, ok := h.currentSession(c)
		if !ok {
			return
		}
		if msg.Column == nil {
			c.sendError(session.GameID, "column is required")
			return
		}
		outcome, err := session.HandleMove(*msg.Column)
		if err != nil {
			if !game.IsClientError(err) {
				log.Printf("[WS] Move in game %s failed: %v", session.GameID, err)
			}
			c.sendError(session.GameID, err.Error())
			return
		}
		h.sendState(c, outcome)

	case domain.MsgRestart:
		session, ok := h.currentSession(c)
		if !ok {
			return
		}
		state, err := session.Restart()
		if err != nil {
			c.sendError(session.GameID, err.Error())
			return
		}
		h.sendState(c, state)

	case domain.MsgHint:
		session, ok := h.currentSession(c)
		if !ok {
			return
		}
		column, err := session.Hint()
		if err != nil {
			c.sendError(session.GameID, err.Error())
			return
		}
		c.write(domain.ServerMessage{Type: domain.MsgHint, GameID: session.GameID, Column: &column})

	default:
		c.sendError(c.gameID, "Unknown message type")
	}
}

func (h *Handler) currentSession(c *client) (*game.GameSession, bool) {
	session, ok := h.SessionManager.GetSession(c.gameID)
	if !ok {
		c.sendError(c.gameID, game.ErrSessionNotFound.Error())
	}
	return session, ok
}

func (h *Handler) sendState(c *client, payload interface{}) {
	c.write(domain.ServerMessage{Type: domain.MsgGameState, GameID: c.gameID, Payload: payload})
}
