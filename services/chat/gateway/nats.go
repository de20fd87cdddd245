package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Lupao-eth/trip-task/internal/pkg/constants"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
	"github.com/Lupao-eth/trip-task/internal/pkg/retry"
	"github.com/Lupao-eth/trip-task/services/chat"
)

// ChatGW handles NATS publish and subscribe for chat messages
type ChatGW struct {
	natsClient *natspkg.Client
	retrier    *retry.Retrier
}

// NewChatGW creates a new chat gateway
func NewChatGW(client *natspkg.Client) chat.ChatGW {
	cfg := retry.DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = 50 * time.Millisecond
	cfg.MaxDelay = time.Second
	return &ChatGW{
		natsClient: client,
		retrier:    retry.New(cfg, logger.GetGlobalLogger()),
	}
}

// PublishMessage publishes a chat message event on the booking's subject
func (g *ChatGW) PublishMessage(ctx context.Context, event *models.MessageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	subject := constants.ChatMessageSubject(event.Message.BookingID.String())
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.natsClient.Publish(subject, data)
	})
}

// SubscribeMessages subscribes to the booking's chat subject. Malformed
// payloads are logged and skipped so one bad producer cannot wedge the
// push path.
func (g *ChatGW) SubscribeMessages(bookingID uuid.UUID, handler func(models.MessageEvent)) (chat.Subscription, error) {
	subject := constants.ChatMessageSubject(bookingID.String())
	return g.natsClient.Subscribe(subject, func(msg *nats.Msg) {
		var event models.MessageEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed chat event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		handler(event)
	})
}
