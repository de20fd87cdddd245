package bookings

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// BookingRepo defines the interface for booking data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Lupao-eth/trip-task/services/bookings BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	ListByParticipant(ctx context.Context, principalID uuid.UUID, status models.BookingStatus) ([]*models.Booking, error)
	ListPending(ctx context.Context) ([]*models.Booking, error)
	AcceptBooking(ctx context.Context, bookingID, riderID uuid.UUID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, reason string) (*models.Booking, error)
}
