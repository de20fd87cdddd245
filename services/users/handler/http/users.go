package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/internal/utils"
	"github.com/Lupao-eth/trip-task/services/users"
)

// UsersHandler handles HTTP requests for profile and rider operations
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new user HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{
		userUC: userUC,
	}
}

// GetMe handles GET /users/me
func (h *UsersHandler) GetMe(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

// upsertProfileRequest carries the editable profile fields
type upsertProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateMe handles PUT /users/me
func (h *UsersHandler) UpdateMe(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	profile, err := h.userUC.UpsertProfile(c.Request().Context(), principalID, req.Username, req.AvatarURL)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", profile)
}

// RegisterRider handles POST /users/me/rider
func (h *UsersHandler) RegisterRider(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.RegisterRiderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rider, err := h.userUC.RegisterRider(c.Request().Context(), principalID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Rider registered", rider)
}

// GetRiderMe handles GET /users/me/rider
func (h *UsersHandler) GetRiderMe(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	rider, err := h.userUC.GetRiderProfile(c.Request().Context(), principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rider profile retrieved", rider)
}

// availabilityRequest carries the availability toggle
type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability handles POST /users/me/rider/availability
func (h *UsersHandler) SetAvailability(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	rider, err := h.userUC.SetAvailability(c.Request().Context(), principalID, req.Available)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", rider)
}
