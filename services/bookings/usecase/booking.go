package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/services/bookings"
)

// bookingUC implements the bookings.BookingUC interface
type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	riderGate   bookings.RiderGate
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	riderGate bookings.RiderGate,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		riderGate:   riderGate,
	}, nil
}

// CreateBooking validates the request and stores a new pending booking
func (uc *bookingUC) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	scheduledAt := req.ScheduledAt
	if req.ASAP {
		scheduledAt = nil
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Pickup:      req.Pickup,
		Dropoff:     req.Dropoff,
		ScheduledAt: scheduledAt,
		Category:    req.Category,
		DisplayName: req.DisplayName,
		Notes:       req.Notes,
		Status:      models.BookingStatusPending,
	}

	stored, err := uc.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("owner_id", req.OwnerID.String()),
			logger.Err(err))
		return nil, err
	}

	uc.publish(ctx, uc.bookingGW.PublishBookingCreated, stored, stored.OwnerID)

	logger.Info("Booking created",
		logger.String("booking_id", stored.ID.String()),
		logger.String("category", string(stored.Category)))
	return stored, nil
}

// GetBooking returns a single booking. Parties always see their booking;
// other principals only see it while it is still pending on the open feed.
func (uc *bookingUC) GetBooking(ctx context.Context, bookingID, principalID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsParty(principalID) && booking.Status != models.BookingStatusPending {
		return nil, apperrors.ErrNotAuthorized
	}

	return booking, nil
}

// ListBookings returns the bookings the principal owns or rides, optionally
// narrowed to one status
func (uc *bookingUC) ListBookings(ctx context.Context, principalID uuid.UUID, status models.BookingStatus) ([]*models.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "is not a known booking status")
	}
	return uc.bookingRepo.ListByParticipant(ctx, principalID, status)
}

// ListAvailableBookings returns the pending feed for riders
func (uc *bookingUC) ListAvailableBookings(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error) {
	if _, err := uc.riderGate.GetRiderProfile(ctx, riderID); err != nil {
		return nil, err
	}
	return uc.bookingRepo.ListPending(ctx)
}

// AcceptBooking claims a pending booking for the rider. The repository's
// conditioned write resolves concurrent accepts: the losers get
// ErrBookingUnavailable regardless of how close the race was.
func (uc *bookingUC) AcceptBooking(ctx context.Context, bookingID, riderID uuid.UUID) (*models.Booking, error) {
	if _, err := uc.riderGate.GetRiderProfile(ctx, riderID); err != nil {
		return nil, err
	}

	available, err := uc.riderGate.IsRiderAvailable(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.ErrRiderUnavailable
	}

	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID == riderID {
		return nil, apperrors.ErrNotAuthorized
	}

	accepted, err := uc.bookingRepo.AcceptBooking(ctx, bookingID, riderID)
	if err != nil {
		if err == apperrors.ErrBookingUnavailable {
			logger.Info("Booking already claimed",
				logger.String("booking_id", bookingID.String()),
				logger.String("rider_id", riderID.String()))
		}
		return nil, err
	}

	uc.publish(ctx, uc.bookingGW.PublishBookingAccepted, accepted, riderID)

	logger.Info("Booking accepted",
		logger.String("booking_id", accepted.ID.String()),
		logger.String("rider_id", riderID.String()))
	return accepted, nil
}

// AdvanceStatus moves a booking one step along the fulfilment chain. Only
// the assigned rider advances status, and only to the immediate successor.
func (uc *bookingUC) AdvanceStatus(ctx context.Context, bookingID, riderID uuid.UUID, target models.BookingStatus) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.RiderID == nil || *booking.RiderID != riderID {
		return nil, apperrors.ErrNotAuthorized
	}

	next, ok := booking.Status.Next()
	if !ok || next != target {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := uc.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, target)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.bookingGW.PublishBookingStatusChanged, updated, riderID)

	logger.Info("Booking status advanced",
		logger.String("booking_id", updated.ID.String()),
		logger.String("status", string(updated.Status)))
	return updated, nil
}

// CancelBooking cancels a booking while it is still cancellable. Pending
// bookings are cancellable by the owner only; accepted bookings by either
// party. Once the rider is on the way the booking runs to completion.
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanCancel() {
		return nil, apperrors.ErrInvalidTransition
	}

	switch booking.Status {
	case models.BookingStatusPending:
		if booking.OwnerID != actorID {
			return nil, apperrors.ErrNotAuthorized
		}
	case models.BookingStatusAccepted:
		if !booking.IsParty(actorID) {
			return nil, apperrors.ErrNotAuthorized
		}
	}

	cancelled, err := uc.bookingRepo.CancelBooking(ctx, bookingID, actorID, reason)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, uc.bookingGW.PublishBookingCancelled, cancelled, actorID)

	logger.Info("Booking cancelled",
		logger.String("booking_id", cancelled.ID.String()),
		logger.String("cancelled_by", actorID.String()))
	return cancelled, nil
}

// publish sends a lifecycle event. The state change is already committed,
// so a publish failure is logged and swallowed rather than unwinding it.
func (uc *bookingUC) publish(ctx context.Context, fn func(context.Context, *models.BookingEvent) error, booking *models.Booking, actorID uuid.UUID) {
	event := &models.BookingEvent{
		BookingID:  booking.ID,
		OwnerID:    booking.OwnerID,
		RiderID:    booking.RiderID,
		Status:     booking.Status,
		ActorID:    actorID,
		OccurredAt: booking.UpdatedAt,
	}
	if err := fn(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", booking.ID.String()),
			logger.String("status", string(booking.Status)),
			logger.Err(err))
	}
}

func validateCreateRequest(req *models.CreateBookingRequest) error {
	if req.OwnerID == uuid.Nil {
		return apperrors.NewValidationError("owner_id", "is required")
	}
	if req.Pickup == "" {
		return apperrors.NewValidationError("pickup", "is required")
	}
	if req.Dropoff == "" {
		return apperrors.NewValidationError("dropoff", "is required")
	}
	if req.DisplayName == "" {
		return apperrors.NewValidationError("display_name", "is required")
	}
	switch req.Category {
	case models.BookingCategoryTrip, models.BookingCategoryTask:
	default:
		return apperrors.NewValidationError("category", "must be TRIP or TASK")
	}
	if !req.ASAP {
		if req.ScheduledAt == nil {
			return apperrors.NewValidationError("scheduled_at", "is required unless asap is set")
		}
		if req.ScheduledAt.Before(time.Now()) {
			return apperrors.NewValidationError("scheduled_at", "must be in the future")
		}
	}
	return nil
}
