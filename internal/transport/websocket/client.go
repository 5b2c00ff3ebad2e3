package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-ai/internal/domain"
)

// client wraps one socket. writeMu ensures only one goroutine writes at a
// time because conn.WriteJSON is not safe for concurrent use.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	gameID  string
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn}
}

func (c *client) send(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteJSON(message)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second))
}

// write sends message and logs a failed write; the read loop notices the
// broken socket on its own.
func (c *client) write(message domain.ServerMessage) {
	if err := c.send(message); err != nil {
		log.Printf("[WS] Write error for game %s (%s): %v", message.GameID, message.Type, err)
	}
}

func (c *client) sendError(gameID, message string) {
	c.write(domain.ServerMessage{Type: domain.MsgError, GameID: gameID, Message: message})
}
