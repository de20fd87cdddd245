package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/services/bookings"
	httpHandler "github.com/Lupao-eth/trip-task/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingsHTTP *httpHandler.BookingsHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	bookingUC bookings.BookingUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		bookingsHTTP: httpHandler.NewBookingsHandler(bookingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/bookings", middleware.JWTAuthMiddleware(h.cfg.JWT))

	group.POST("", h.bookingsHTTP.CreateBooking)
	group.GET("", h.bookingsHTTP.ListBookings)
	group.GET("/available", h.bookingsHTTP.ListAvailableBookings)
	group.GET("/:id", h.bookingsHTTP.GetBooking)
	group.POST("/:id/accept", h.bookingsHTTP.AcceptBooking)
	group.POST("/:id/status", h.bookingsHTTP.UpdateStatus)
	group.POST("/:id/cancel", h.bookingsHTTP.CancelBooking)
}
