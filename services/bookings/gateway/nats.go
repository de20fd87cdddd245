package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Lupao-eth/trip-task/internal/pkg/constants"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
	"github.com/Lupao-eth/trip-task/internal/pkg/retry"
	"github.com/Lupao-eth/trip-task/services/bookings"
)

// BookingGW handles NATS publishing for booking lifecycle events
type BookingGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(client *natspkg.Client) bookings.BookingGW {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = 50 * time.Millisecond
	cfg.MaxDelay = time.Second
	return &BookingGW{
		natsClient: client,
		retrier:    retry.New(cfg, logger.GetGlobalLogger()),
	}
}

// PublishBookingCreated publishes a booking created event to NATS
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingCreated, event)
}

// PublishBookingAccepted publishes a booking accepted event to NATS
func (g *BookingGW) PublishBookingAccepted(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingAccepted, event)
}

// PublishBookingStatusChanged publishes a status transition event to NATS
func (g *BookingGW) PublishBookingStatusChanged(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingStatus, event)
}

// PublishBookingCancelled publishes a booking cancelled event to NATS
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, constants.SubjectBookingCancelled, event)
}

func (g *BookingGW) publish(ctx context.Context, subject string, event *models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
}
