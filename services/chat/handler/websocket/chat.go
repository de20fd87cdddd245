package websocket

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	ws "github.com/Lupao-eth/trip-task/internal/pkg/websocket"
	"github.com/Lupao-eth/trip-task/services/chat"
)

// Event names on the chat WebSocket
const (
	EventMessage = "chat.message"
	EventSend    = "chat.send"
)

// ChatHandler bridges WebSocket connections onto chat channels
type ChatHandler struct {
	chatUC  chat.ChatUC
	manager *ws.Manager
}

// NewChatHandler creates a new chat WebSocket handler
func NewChatHandler(chatUC chat.ChatUC, manager *ws.Manager) *ChatHandler {
	return &ChatHandler{
		chatUC:  chatUC,
		manager: manager,
	}
}

// HandleChat handles GET /ws/bookings/:id. It authenticates the client,
// opens the booking's channel and pumps it onto the connection while
// accepting sends from the client.
func (h *ChatHandler) HandleChat(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(400, "Invalid booking ID")
	}

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, conn *ws.Conn) error {
		return h.serve(c.Request().Context(), bookingID, client, conn)
	})
}

func (h *ChatHandler) serve(ctx context.Context, bookingID uuid.UUID, client *models.WebSocketClient, conn *ws.Conn) error {
	channel, err := h.chatUC.OpenChannel(ctx, bookingID, client.UserID)
	if err != nil {
		ws.SendErrorMessage(conn, "channel_unavailable", err.Error())
		return err
	}
	defer channel.Close()

	if err := h.chatUC.MarkPresent(ctx, bookingID, client.UserID); err != nil {
		logger.Warn("Failed to mark chat presence",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}
	defer func() {
		if err := h.chatUC.ClearPresent(context.Background(), bookingID, client.UserID); err != nil {
			logger.Warn("Failed to clear chat presence",
				logger.String("booking_id", bookingID.String()),
				logger.Err(err))
		}
	}()

	// Writer: every refreshed conversation view to the connection
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for view := range channel.Messages() {
			if err := ws.SendMessage(conn, EventMessage, view); err != nil {
				logger.Debug("Chat connection write failed",
					logger.String("booking_id", bookingID.String()),
					logger.Err(err))
				return
			}
		}
	}()

	// Reader: client sends to the usecase
	for {
		var envelope models.WSMessage
		if err := conn.ReadJSON(&envelope); err != nil {
			break
		}
		if envelope.Event != EventSend {
			ws.SendErrorMessage(conn, "unknown_event", "unsupported event: "+envelope.Event)
			continue
		}

		var req models.SendMessageRequest
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			ws.SendErrorMessage(conn, "bad_payload", "malformed send payload")
			continue
		}

		if _, err := h.chatUC.SendMessage(ctx, bookingID, client.UserID, req.Content); err != nil {
			ws.SendErrorMessage(conn, "send_failed", err.Error())
		}
	}

	channel.Close()
	<-writeDone
	return nil
}
