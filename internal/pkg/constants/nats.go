package constants

import "fmt"

// NATS Subjects
const (
	// Booking lifecycle events
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAccepted  = "booking.accepted"
	SubjectBookingStatus    = "booking.status"
	SubjectBookingCancelled = "booking.cancelled"

	// Chat events, per-booking. Use ChatMessageSubject to build the subject.
	SubjectChatMessage = "chat.message.%s"
)

// ChatMessageSubject returns the per-booking chat subject
func ChatMessageSubject(bookingID string) string {
	return fmt.Sprintf(SubjectChatMessage, bookingID)
}
