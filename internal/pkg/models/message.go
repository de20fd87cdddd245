package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Content prefixes for messages that reference uploaded blobs
const (
	ContentPrefixImage = "image:"
	ContentPrefixFile  = "file:"
)

// Message represents one chat utterance scoped to a single booking.
// Messages are immutable after creation.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
	SenderID  uuid.UUID `json:"sender_id" db:"sender_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAttachment reports whether the content is a tagged blob reference
// rather than plain text.
func (m *Message) IsAttachment() bool {
	return strings.HasPrefix(m.Content, ContentPrefixImage) ||
		strings.HasPrefix(m.Content, ContentPrefixFile)
}

// ChatMessage is a message enriched with its sender's profile, as delivered
// to chat consumers.
type ChatMessage struct {
	Message
	Sender Profile `json:"sender"`
}

// Before reports whether m orders before other in the per-booking log:
// ascending creation time, message ID as tie-break.
func (m *ChatMessage) Before(other *ChatMessage) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.ID.String() < other.ID.String()
}

// SendMessageRequest carries the payload for posting a chat message
type SendMessageRequest struct {
	Content string `json:"content"`
}
