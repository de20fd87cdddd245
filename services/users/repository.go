package users

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Lupao-eth/trip-task/services/users UserRepo
type UserRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	CreateRiderProfile(ctx context.Context, rider *models.RiderProfile) (*models.RiderProfile, error)
	GetRiderProfile(ctx context.Context, riderID uuid.UUID) (*models.RiderProfile, error)
	SetRiderAvailability(ctx context.Context, riderID uuid.UUID, available bool) (*models.RiderProfile, error)
	IsRiderAvailable(ctx context.Context, riderID uuid.UUID) (bool, error)
	IncrementCompletedTrips(ctx context.Context, riderID uuid.UUID) error
}
