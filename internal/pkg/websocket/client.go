package websocket

import (
	"encoding/json"
	"sync"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/gorilla/websocket"
)

// Conn wraps a websocket connection with serialized writes.
// gorilla/websocket supports at most one concurrent writer per connection,
// and handlers write from both a stream goroutine and their read loop.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

// NewConn wraps an upgraded connection
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteJSON writes v as a single JSON frame, serialized against other writers
func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

// ReadJSON reads the next JSON frame into v. Reads are not serialized;
// a connection has a single reader.
func (c *Conn) ReadJSON(v interface{}) error {
	return c.ws.ReadJSON(v)
}

// Close closes the underlying connection
func (c *Conn) Close() error {
	return c.ws.Close()
}

// SendMessage marshals the payload into the event envelope and writes it
// to the connection.
func SendMessage(conn *Conn, event string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  raw,
	})
}

// SendErrorMessage notifies the client of a recoverable error without
// closing the connection.
func SendErrorMessage(conn *Conn, code string, message string) error {
	payload, err := json.Marshal(models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
	if err != nil {
		return err
	}
	return conn.WriteJSON(models.WSMessage{
		Event: "error",
		Data:  payload,
	})
}
