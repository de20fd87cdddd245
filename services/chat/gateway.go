package chat

import (
	"context"

	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/google/uuid"
)

// Subscription is a live push subscription that can be torn down
type Subscription interface {
	Unsubscribe() error
}

// ChatGW defines the interface for chat gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Lupao-eth/trip-task/services/chat ChatGW
type ChatGW interface {
	PublishMessage(ctx context.Context, event *models.MessageEvent) error
	SubscribeMessages(bookingID uuid.UUID, handler func(models.MessageEvent)) (Subscription, error)
}
