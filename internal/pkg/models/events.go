package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published on every booking lifecycle transition
type BookingEvent struct {
	BookingID  uuid.UUID     `json:"booking_id"`
	OwnerID    uuid.UUID     `json:"owner_id"`
	RiderID    *uuid.UUID    `json:"rider_id,omitempty"`
	Status     BookingStatus `json:"status"`
	ActorID    uuid.UUID     `json:"actor_id"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// MessageEvent is published on the per-booking chat subject when a message
// is inserted. It carries the full message so subscribers can append without
// a read-back.
type MessageEvent struct {
	Message Message `json:"message"`
}
