package bookings

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// RiderGate exposes the rider checks the acceptance flow depends on
// go:generate mockgen -destination=mocks/mock_ridergate.go -package=mocks github.com/Lupao-eth/trip-task/services/bookings RiderGate
type RiderGate interface {
	GetRiderProfile(ctx context.Context, riderID uuid.UUID) (*models.RiderProfile, error)
	IsRiderAvailable(ctx context.Context, riderID uuid.UUID) (bool, error)
}
