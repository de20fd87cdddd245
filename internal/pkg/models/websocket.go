package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient holds the authenticated identity of a connected client
type WebSocketClient struct {
	UserID uuid.UUID
	Role   string
}

// WebSocketClaims are the JWT claims carried on WebSocket connections
type WebSocketClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}
