package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
	"github.com/Lupao-eth/trip-task/services/users"
	httpHandler "github.com/Lupao-eth/trip-task/services/users/handler/http"
	natsHandler "github.com/Lupao-eth/trip-task/services/users/handler/nats"
)

// Handler combines all handlers for the users service
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	usersNATS *natsHandler.UsersHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	userUC users.UserUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		usersNATS: natsHandler.NewUsersHandler(userUC, natsClient),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/users", middleware.JWTAuthMiddleware(h.cfg.JWT))

	group.GET("/me", h.usersHTTP.GetMe)
	group.PUT("/me", h.usersHTTP.UpdateMe)
	group.GET("/me/rider", h.usersHTTP.GetRiderMe)
	group.POST("/me/rider", h.usersHTTP.RegisterRider)
	group.POST("/me/rider/availability", h.usersHTTP.SetAvailability)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.usersNATS.InitNATSConsumers()
}

// Close tears down the NATS consumers
func (h *Handler) Close() {
	h.usersNATS.Close()
}
