package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the current status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusOnTheWay  BookingStatus = "ON_THE_WAY"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Next returns the immediate successor status in the fulfilment chain.
// The second return value is false when the status has no successor.
func (s BookingStatus) Next() (BookingStatus, bool) {
	switch s {
	case BookingStatusAccepted:
		return BookingStatusOnTheWay, true
	case BookingStatusOnTheWay:
		return BookingStatusCompleted, true
	default:
		return "", false
	}
}

// IsValid reports whether the value is one of the defined statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusOnTheWay,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanCancel reports whether a booking in this status may still be cancelled.
// Cancellation is allowed while Pending (owner) and while Accepted (either party).
func (s BookingStatus) CanCancel() bool {
	return s == BookingStatusPending || s == BookingStatusAccepted
}

// BookingCategory distinguishes ride bookings from errand/task bookings
type BookingCategory string

const (
	BookingCategoryTrip BookingCategory = "TRIP"
	BookingCategoryTask BookingCategory = "TASK"
)

// Booking represents one service request tracked through its status lifecycle
type Booking struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	OwnerID            uuid.UUID       `json:"owner_id" db:"owner_id"`
	RiderID            *uuid.UUID      `json:"rider_id,omitempty" db:"rider_id"`
	Pickup             string          `json:"pickup" db:"pickup"`
	Dropoff            string          `json:"dropoff" db:"dropoff"`
	ScheduledAt        *time.Time      `json:"scheduled_at,omitempty" db:"scheduled_at"` // nil means ASAP
	Category           BookingCategory `json:"category" db:"category"`
	DisplayName        string          `json:"display_name" db:"display_name"`
	Notes              string          `json:"notes,omitempty" db:"notes"`
	Status             BookingStatus   `json:"status" db:"status"`
	CancelledBy        *uuid.UUID      `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancellationReason *string         `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
	AcceptedAt         *time.Time      `json:"accepted_at,omitempty" db:"accepted_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// IsParty reports whether the given principal is the booking's owner or its
// assigned rider.
func (b *Booking) IsParty(principalID uuid.UUID) bool {
	if b.OwnerID == principalID {
		return true
	}
	return b.RiderID != nil && *b.RiderID == principalID
}

// CreateBookingRequest carries the caller-supplied booking attributes
type CreateBookingRequest struct {
	OwnerID     uuid.UUID       `json:"owner_id"`
	Pickup      string          `json:"pickup"`
	Dropoff     string          `json:"dropoff"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
	ASAP        bool            `json:"asap"`
	Category    BookingCategory `json:"category"`
	DisplayName string          `json:"display_name"`
	Notes       string          `json:"notes,omitempty"`
}
