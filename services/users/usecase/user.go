package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/services/users"
)

// userUC implements the users.UserUC interface. It also serves as the
// rider gate for the booking acceptance flow.
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
) (users.UserUC, error) {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}, nil
}

// GetProfile returns the principal's display profile
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return uc.userRepo.GetProfile(ctx, userID)
}

// UpsertProfile creates or updates the principal's display profile
func (uc *userUC) UpsertProfile(ctx context.Context, userID uuid.UUID, username, avatarURL string) (*models.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "is required")
	}
	if len(username) > 64 {
		return nil, apperrors.NewValidationError("username", "exceeds maximum length")
	}

	return uc.userRepo.UpsertProfile(ctx, &models.Profile{
		ID:        userID,
		Username:  username,
		AvatarURL: avatarURL,
	})
}

// RegisterRider opts the principal into the rider role. A display profile
// must already exist; riders start unavailable until they toggle on.
func (uc *userUC) RegisterRider(ctx context.Context, userID uuid.UUID, req *models.RegisterRiderRequest) (*models.RiderProfile, error) {
	if req.VehicleType == "" {
		return nil, apperrors.NewValidationError("vehicle_type", "is required")
	}

	if _, err := uc.userRepo.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	rider, err := uc.userRepo.CreateRiderProfile(ctx, &models.RiderProfile{
		UserID:       userID,
		Available:    false,
		VehicleType:  req.VehicleType,
		VehiclePlate: req.VehiclePlate,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Rider registered",
		logger.String("rider_id", userID.String()),
		logger.String("vehicle_type", rider.VehicleType))
	return rider, nil
}

// SetAvailability flips whether the rider shows up as accepting bookings
func (uc *userUC) SetAvailability(ctx context.Context, riderID uuid.UUID, available bool) (*models.RiderProfile, error) {
	return uc.userRepo.SetRiderAvailability(ctx, riderID, available)
}

// GetRiderProfile returns the rider profile, or ErrRiderProfileNotFound
// for principals who never opted in
func (uc *userUC) GetRiderProfile(ctx context.Context, riderID uuid.UUID) (*models.RiderProfile, error) {
	return uc.userRepo.GetRiderProfile(ctx, riderID)
}

// IsRiderAvailable reports whether the rider is currently accepting bookings
func (uc *userUC) IsRiderAvailable(ctx context.Context, riderID uuid.UUID) (bool, error) {
	return uc.userRepo.IsRiderAvailable(ctx, riderID)
}

// RecordCompletedBooking bumps the rider's completion counter. Driven by
// the booking status event stream.
func (uc *userUC) RecordCompletedBooking(ctx context.Context, riderID uuid.UUID) error {
	if err := uc.userRepo.IncrementCompletedTrips(ctx, riderID); err != nil {
		return err
	}

	logger.Info("Recorded completed booking",
		logger.String("rider_id", riderID.String()))
	return nil
}
