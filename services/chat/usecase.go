package chat

import (
	"context"
	"io"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// ChatUC defines the interface for chat business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Lupao-eth/trip-task/services/chat ChatUC
type ChatUC interface {
	SendMessage(ctx context.Context, bookingID, senderID uuid.UUID, content string) (*models.ChatMessage, error)
	GetMessages(ctx context.Context, bookingID, principalID uuid.UUID) ([]models.ChatMessage, error)
	OpenChannel(ctx context.Context, bookingID, principalID uuid.UUID) (*Channel, error)
	AttachFile(ctx context.Context, bookingID, senderID uuid.UUID, filename, contentType string, body io.Reader) (*models.ChatMessage, error)
	MarkPresent(ctx context.Context, bookingID, principalID uuid.UUID) error
	ClearPresent(ctx context.Context, bookingID, principalID uuid.UUID) error
}
