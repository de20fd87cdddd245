package constants

// Redis key formats
const (
	// Users Service
	KeyAvailableRiders = "riders:available" // Set of rider IDs currently accepting bookings

	// Chat Service
	KeyChatPresence = "chat:presence:%s" // Format: chat:presence:{booking_id}, set of connected user IDs
)
