package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/internal/utils"
	"github.com/Lupao-eth/trip-task/services/bookings"
)

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingsHandler) CreateBooking(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.OwnerID = principalID

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// GetBooking handles GET /bookings/:id
func (h *BookingsHandler) GetBooking(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID, principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", booking)
}

// ListBookings handles GET /bookings with an optional ?status= filter
func (h *BookingsHandler) ListBookings(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	status := models.BookingStatus(c.QueryParam("status"))
	list, err := h.bookingUC.ListBookings(c.Request().Context(), principalID, status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", list)
}

// ListAvailableBookings handles GET /bookings/available
func (h *BookingsHandler) ListAvailableBookings(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	list, err := h.bookingUC.ListAvailableBookings(c.Request().Context(), principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available bookings retrieved", list)
}

// AcceptBooking handles POST /bookings/:id/accept
func (h *BookingsHandler) AcceptBooking(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.AcceptBooking(c.Request().Context(), bookingID, principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	logger.Info("Booking accepted over HTTP",
		logger.String("booking_id", bookingID.String()),
		logger.String("rider_id", principalID.String()))
	return utils.SuccessResponse(c, http.StatusOK, "Booking accepted", booking)
}

// statusUpdateRequest carries the target status for a transition
type statusUpdateRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatus handles POST /bookings/:id/status
func (h *BookingsHandler) UpdateStatus(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Target status is required")
	}

	booking, err := h.bookingUC.AdvanceStatus(c.Request().Context(), bookingID, principalID, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated", booking)
}

// cancelRequest carries the optional cancellation reason
type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking handles POST /bookings/:id/cancel
func (h *BookingsHandler) CancelBooking(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, principalID, req.Reason)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", booking)
}
