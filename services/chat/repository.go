package chat

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// ChatRepo defines the interface for chat data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Lupao-eth/trip-task/services/chat ChatRepo
type ChatRepo interface {
	InsertMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListMessages(ctx context.Context, bookingID uuid.UUID) ([]*models.Message, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	MarkPresent(ctx context.Context, bookingID, userID uuid.UUID) error
	ClearPresent(ctx context.Context, bookingID, userID uuid.UUID) error
	ListPresent(ctx context.Context, bookingID uuid.UUID) ([]string, error)
}
