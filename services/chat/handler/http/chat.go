package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/internal/utils"
	"github.com/Lupao-eth/trip-task/services/chat"
)

// maxAttachmentSize caps uploads at 10 MiB
const maxAttachmentSize = 10 << 20

// ChatHandler handles HTTP requests for chat operations
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

// GetMessages handles GET /bookings/:id/messages
func (h *ChatHandler) GetMessages(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	messages, err := h.chatUC.GetMessages(c.Request().Context(), bookingID, principalID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", messages)
}

// SendMessage handles POST /bookings/:id/messages
func (h *ChatHandler) SendMessage(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), bookingID, principalID, req.Content)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// AttachFile handles POST /bookings/:id/attachments
func (h *ChatHandler) AttachFile(c echo.Context) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "A file form field is required")
	}
	if fileHeader.Size > maxAttachmentSize {
		return utils.BadRequestResponse(c, "File exceeds the maximum attachment size")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	message, err := h.chatUC.AttachFile(c.Request().Context(), bookingID, principalID,
		fileHeader.Filename, contentType, file)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Attachment sent", message)
}
