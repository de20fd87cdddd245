package bookings

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// BookingUC defines the interface for booking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Lupao-eth/trip-task/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, principalID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, principalID uuid.UUID, status models.BookingStatus) ([]*models.Booking, error)
	ListAvailableBookings(ctx context.Context, riderID uuid.UUID) ([]*models.Booking, error)
	AcceptBooking(ctx context.Context, bookingID, riderID uuid.UUID) (*models.Booking, error)
	AdvanceStatus(ctx context.Context, bookingID, riderID uuid.UUID, target models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, reason string) (*models.Booking, error)
}
