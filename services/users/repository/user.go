package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/constants"
	"github.com/Lupao-eth/trip-task/internal/pkg/database"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

// UserRepo implements the user repository interface
type UserRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewUserRepository creates a new user repository
func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *UserRepo {
	return &UserRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// GetProfile retrieves a profile by principal ID
func (r *UserRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, username, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var profile models.Profile
	err := r.db.QueryRowxContext(ctx, query, userID).StructScan(&profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.NewTransientError("profile.get", err)
	}

	return &profile, nil
}

// UpsertProfile creates the profile on first sign-in and updates it after
func (r *UserRepo) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, username, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username, avatar_url = EXCLUDED.avatar_url, updated_at = NOW()
		RETURNING id, username, avatar_url, created_at, updated_at`

	var stored models.Profile
	err := r.db.QueryRowxContext(
		ctx,
		query,
		profile.ID,
		profile.Username,
		profile.AvatarURL,
	).StructScan(&stored)
	if err != nil {
		return nil, apperrors.NewTransientError("profile.upsert", err)
	}

	return &stored, nil
}

// CreateRiderProfile opts a principal into the rider role
func (r *UserRepo) CreateRiderProfile(ctx context.Context, rider *models.RiderProfile) (*models.RiderProfile, error) {
	query := `
		INSERT INTO rider_profiles (user_id, available, vehicle_type, vehicle_plate, rating, completed_trips, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET vehicle_type = EXCLUDED.vehicle_type, vehicle_plate = EXCLUDED.vehicle_plate, updated_at = NOW()
		RETURNING user_id, available, vehicle_type, vehicle_plate, rating, completed_trips, created_at, updated_at`

	var stored models.RiderProfile
	err := r.db.QueryRowxContext(
		ctx,
		query,
		rider.UserID,
		rider.Available,
		rider.VehicleType,
		rider.VehiclePlate,
	).StructScan(&stored)
	if err != nil {
		return nil, apperrors.NewTransientError("rider.create", err)
	}

	return &stored, nil
}

// GetRiderProfile retrieves a rider profile. Its absence means the
// principal never opted into the rider role.
func (r *UserRepo) GetRiderProfile(ctx context.Context, riderID uuid.UUID) (*models.RiderProfile, error) {
	query := `
		SELECT user_id, available, vehicle_type, vehicle_plate, rating, completed_trips, created_at, updated_at
		FROM rider_profiles
		WHERE user_id = $1`

	var rider models.RiderProfile
	err := r.db.QueryRowxContext(ctx, query, riderID).StructScan(&rider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRiderProfileNotFound
		}
		return nil, apperrors.NewTransientError("rider.get", err)
	}

	return &rider, nil
}

// SetRiderAvailability flips the rider's availability and mirrors it into
// the Redis set the accept gate reads.
func (r *UserRepo) SetRiderAvailability(ctx context.Context, riderID uuid.UUID, available bool) (*models.RiderProfile, error) {
	query := `
		UPDATE rider_profiles
		SET available = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, available, vehicle_type, vehicle_plate, rating, completed_trips, created_at, updated_at`

	var rider models.RiderProfile
	err := r.db.QueryRowxContext(ctx, query, riderID, available).StructScan(&rider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRiderProfileNotFound
		}
		return nil, apperrors.NewTransientError("rider.set_availability", err)
	}

	if err := r.mirrorAvailability(ctx, riderID, available); err != nil {
		// The database row is authoritative; a stale mirror self-heals on
		// the next toggle
		logger.Warn("Failed to mirror rider availability",
			logger.String("rider_id", riderID.String()),
			logger.Err(err))
	}

	return &rider, nil
}

func (r *UserRepo) mirrorAvailability(ctx context.Context, riderID uuid.UUID, available bool) error {
	if available {
		return r.redisClient.SAdd(ctx, constants.KeyAvailableRiders, riderID.String())
	}
	return r.redisClient.SRem(ctx, constants.KeyAvailableRiders, riderID.String())
}

// IsRiderAvailable checks the Redis mirror first. Only a positive answer
// is trusted: a missing member can mean a failed mirror write as much as
// an unavailable rider, so negatives and errors both read the database,
// which is authoritative.
func (r *UserRepo) IsRiderAvailable(ctx context.Context, riderID uuid.UUID) (bool, error) {
	available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableRiders, riderID.String())
	if err == nil && available {
		return true, nil
	}
	if err != nil {
		logger.Warn("Availability mirror unreachable, reading the database",
			logger.String("rider_id", riderID.String()),
			logger.Err(err))
	}

	rider, err := r.GetRiderProfile(ctx, riderID)
	if err != nil {
		return false, err
	}

	if rider.Available {
		// Heal the mirror so the fast path answers next time
		if mirrorErr := r.mirrorAvailability(ctx, riderID, true); mirrorErr != nil {
			logger.Warn("Failed to heal availability mirror",
				logger.String("rider_id", riderID.String()),
				logger.Err(mirrorErr))
		}
	}
	return rider.Available, nil
}

// IncrementCompletedTrips bumps the rider's completed booking counter
func (r *UserRepo) IncrementCompletedTrips(ctx context.Context, riderID uuid.UUID) error {
	query := `
		UPDATE rider_profiles
		SET completed_trips = completed_trips + 1, updated_at = NOW()
		WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, riderID)
	if err != nil {
		return apperrors.NewTransientError("rider.increment_trips", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewTransientError("rider.increment_trips", err)
	}
	if rows == 0 {
		return apperrors.ErrRiderProfileNotFound
	}
	return nil
}
