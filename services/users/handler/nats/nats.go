package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/Lupao-eth/trip-task/internal/pkg/constants"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
	"github.com/Lupao-eth/trip-task/services/users"
)

// UsersHandler consumes booking lifecycle events for rider bookkeeping
type UsersHandler struct {
	userUC     users.UserUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewUsersHandler creates a new users NATS handler
func NewUsersHandler(userUC users.UserUC, natsClient *natspkg.Client) *UsersHandler {
	return &UsersHandler{
		userUC:     userUC,
		natsClient: natsClient,
	}
}

// InitNATSConsumers subscribes to the subjects this service consumes
func (h *UsersHandler) InitNATSConsumers() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectBookingAccepted: h.handleBookingAccepted,
		constants.SubjectBookingStatus:   h.handleBookingStatus,
	}

	for subject, handler := range subjects {
		sub, err := h.natsClient.QueueSubscribe(subject, "users-stats", handler)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	logger.Info("Users NATS consumers initialized",
		logger.Int("subjects", len(subjects)))
	return nil
}

// handleBookingAccepted pulls the rider out of the availability pool once
// a booking is theirs, so the pending feed stops offering work to a rider
// already on a job. They opt back in through the availability toggle.
func (h *UsersHandler) handleBookingAccepted(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Dropping malformed booking event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if event.RiderID == nil {
		return
	}

	if _, err := h.userUC.SetAvailability(context.Background(), *event.RiderID, false); err != nil {
		logger.Error("Failed to remove rider from availability pool",
			logger.String("booking_id", event.BookingID.String()),
			logger.String("rider_id", event.RiderID.String()),
			logger.Err(err))
	}
}

// handleBookingStatus counts completed bookings against the rider
func (h *UsersHandler) handleBookingStatus(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Dropping malformed booking event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	if event.Status != models.BookingStatusCompleted || event.RiderID == nil {
		return
	}

	if err := h.userUC.RecordCompletedBooking(context.Background(), *event.RiderID); err != nil {
		logger.Error("Failed to record completed booking",
			logger.String("booking_id", event.BookingID.String()),
			logger.String("rider_id", event.RiderID.String()),
			logger.Err(err))
	}
}

// Close drains the consumers
func (h *UsersHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe users consumer", logger.Err(err))
		}
	}
}
