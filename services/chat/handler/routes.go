package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	ws "github.com/Lupao-eth/trip-task/internal/pkg/websocket"
	"github.com/Lupao-eth/trip-task/services/chat"
	httpHandler "github.com/Lupao-eth/trip-task/services/chat/handler/http"
	wsHandler "github.com/Lupao-eth/trip-task/services/chat/handler/websocket"
)

// Handler combines all handlers for the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
	chatWS   *wsHandler.ChatHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	chatUC chat.ChatUC,
	wsManager *ws.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC),
		chatWS:   wsHandler.NewChatHandler(chatUC, wsManager),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("/:id/messages", h.chatHTTP.GetMessages)
	group.POST("/:id/messages", h.chatHTTP.SendMessage)
	group.POST("/:id/attachments", h.chatHTTP.AttachFile)

	// WebSocket authenticates inside the manager, not via middleware
	e.GET("/ws/bookings/:id", h.chatWS.HandleChat)
}
