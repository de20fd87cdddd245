package bookings

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

// BookingGW defines the interface for booking gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Lupao-eth/trip-task/services/bookings BookingGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error
	PublishBookingAccepted(ctx context.Context, event *models.BookingEvent) error
	PublishBookingStatusChanged(ctx context.Context, event *models.BookingEvent) error
	PublishBookingCancelled(ctx context.Context, event *models.BookingEvent) error
}
