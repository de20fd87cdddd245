package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

// dialTestConn upgrades against a throwaway server and returns both ends.
func dialTestConn(t *testing.T) (client *websocket.Conn, frames <-chan models.WSMessage, cleanup func()) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	received := make(chan models.WSMessage, 256)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer serverConn.Close()
		for {
			var frame models.WSMessage
			if err := serverConn.ReadJSON(&frame); err != nil {
				return
			}
			received <- frame
		}
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, received, func() {
		conn.Close()
		srv.Close()
	}
}

func TestConnSerializesConcurrentWriters(t *testing.T) {
	raw, frames, cleanup := dialTestConn(t)
	defer cleanup()

	conn := NewConn(raw)
	const perWriter = 50

	// A stream goroutine and a read-loop goroutine write at the same time,
	// the way the chat handler does.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < perWriter; i++ {
			assert.NoError(t, SendMessage(conn, "chat.message", map[string]string{"seq": "stream"}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < perWriter; i++ {
			assert.NoError(t, SendErrorMessage(conn, "send_failed", "boom"))
		}
	}()
	wg.Wait()

	var messages, errors int
	for i := 0; i < 2*perWriter; i++ {
		select {
		case frame := <-frames:
			switch frame.Event {
			case "chat.message":
				messages++
			case "error":
				errors++
			default:
				t.Fatalf("unexpected event %q", frame.Event)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d of %d frames", i, 2*perWriter)
		}
	}
	assert.Equal(t, perWriter, messages)
	assert.Equal(t, perWriter, errors)
}
