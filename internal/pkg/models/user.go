package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a display identity keyed by principal ID.
// One profile exists per authenticated principal, created on first sign-in.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	AvatarURL string    `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RiderProfile marks a principal as a rider and carries operational
// attributes. Existence of this record is the authorization gate for
// rider-only operations.
type RiderProfile struct {
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Available      bool      `json:"available" db:"available"`
	VehicleType    string    `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate   string    `json:"vehicle_plate" db:"vehicle_plate"`
	Rating         float64   `json:"rating" db:"rating"`
	CompletedTrips int       `json:"completed_trips" db:"completed_trips"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRiderRequest carries the payload for opting into the rider role
type RegisterRiderRequest struct {
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate"`
}
