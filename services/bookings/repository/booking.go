package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// bookingColumns is the full column list shared by every booking query so
// RETURNING rows scan into the same struct shape everywhere.
const bookingColumns = `
	id, owner_id, rider_id, pickup, dropoff, scheduled_at,
	category, display_name, notes, status,
	cancelled_by, cancellation_reason,
	created_at, updated_at, accepted_at, completed_at, cancelled_at`

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new booking and returns the stored row. All
// timestamps come from the database clock, not the caller's.
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (
			id, owner_id, pickup, dropoff, scheduled_at,
			category, display_name, notes, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING` + bookingColumns

	var stored models.Booking
	err := r.db.QueryRowxContext(
		ctx,
		query,
		booking.ID,
		booking.OwnerID,
		booking.Pickup,
		booking.Dropoff,
		booking.ScheduledAt,
		booking.Category,
		booking.DisplayName,
		booking.Notes,
		models.BookingStatusPending,
	).StructScan(&stored)
	if err != nil {
		return nil, apperrors.NewTransientError("booking.create", err)
	}

	return &stored, nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.QueryRowxContext(ctx, query, bookingID).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.NewTransientError("booking.get", err)
	}

	return &booking, nil
}

// ListByParticipant retrieves every booking the principal owns or rides,
// newest first. An empty status means no filter.
func (r *BookingRepo) ListByParticipant(ctx context.Context, principalID uuid.UUID, status models.BookingStatus) ([]*models.Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM bookings
		WHERE (owner_id = $1 OR rider_id = $1)`
	args := []interface{}{principalID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += `
		ORDER BY created_at DESC`

	var bookings []*models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, apperrors.NewTransientError("booking.list", err)
	}

	return bookings, nil
}

// ListPending retrieves the unclaimed bookings riders can accept, oldest
// first so long-waiting requests surface on top.
func (r *BookingRepo) ListPending(ctx context.Context) ([]*models.Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND rider_id IS NULL
		ORDER BY created_at ASC`

	var bookings []*models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, models.BookingStatusPending); err != nil {
		return nil, apperrors.NewTransientError("booking.list_pending", err)
	}

	return bookings, nil
}

// AcceptBooking claims a pending booking for the rider in a single
// conditioned write. The WHERE clause only matches a booking that is still
// pending and unclaimed, so under concurrent accepts exactly one rider's
// update finds a row; everyone else gets ErrBookingUnavailable.
func (r *BookingRepo) AcceptBooking(ctx context.Context, bookingID, riderID uuid.UUID) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $3, rider_id = $2, accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = $4 AND rider_id IS NULL
		RETURNING` + bookingColumns

	var booking models.Booking
	err := r.db.QueryRowxContext(
		ctx,
		query,
		bookingID,
		riderID,
		models.BookingStatusAccepted,
		models.BookingStatusPending,
	).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingUnavailable
		}
		return nil, apperrors.NewTransientError("booking.accept", err)
	}

	return &booking, nil
}

// UpdateStatus advances a booking from one status to the next in a
// conditioned write. Zero rows means the booking moved concurrently and the
// transition no longer applies.
func (r *BookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW(),
			completed_at = CASE WHEN $3 = $4 THEN NOW() ELSE completed_at END
		WHERE id = $1 AND status = $2
		RETURNING` + bookingColumns

	var booking models.Booking
	err := r.db.QueryRowxContext(
		ctx,
		query,
		bookingID,
		from,
		to,
		models.BookingStatusCompleted,
	).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, apperrors.NewTransientError("booking.update_status", err)
	}

	return &booking, nil
}

// CancelBooking marks a booking cancelled while it is still cancellable.
// The status condition keeps a cancel racing against an accept or a
// completion from clobbering the later state.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, reason string) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $4, cancelled_by = $2, cancellation_reason = NULLIF($3, ''),
			cancelled_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status IN ($5, $6)
		RETURNING` + bookingColumns

	var booking models.Booking
	err := r.db.QueryRowxContext(
		ctx,
		query,
		bookingID,
		actorID,
		reason,
		models.BookingStatusCancelled,
		models.BookingStatusPending,
		models.BookingStatusAccepted,
	).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, apperrors.NewTransientError("booking.cancel", err)
	}

	return &booking, nil
}
