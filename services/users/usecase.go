package users

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// UserUC defines the interface for user and rider business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Lupao-eth/trip-task/services/users UserUC
type UserUC interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, username, avatarURL string) (*models.Profile, error)
	RegisterRider(ctx context.Context, userID uuid.UUID, req *models.RegisterRiderRequest) (*models.RiderProfile, error)
	SetAvailability(ctx context.Context, riderID uuid.UUID, available bool) (*models.RiderProfile, error)
	GetRiderProfile(ctx context.Context, riderID uuid.UUID) (*models.RiderProfile, error)
	IsRiderAvailable(ctx context.Context, riderID uuid.UUID) (bool, error)
	RecordCompletedBooking(ctx context.Context, riderID uuid.UUID) error
}
