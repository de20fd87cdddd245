package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/internal/pkg/storage"
	"github.com/Lupao-eth/trip-task/services/bookings"
	"github.com/Lupao-eth/trip-task/services/chat"
)

const maxMessageLength = 4000

// chatUC implements the chat.ChatUC interface
type chatUC struct {
	cfg         *models.Config
	chatRepo    chat.ChatRepo
	chatGW      chat.ChatGW
	bookingRepo bookings.BookingRepo
	blobStore   storage.BlobStore
}

// NewChatUC creates a new chat use case
func NewChatUC(
	cfg *models.Config,
	chatRepo chat.ChatRepo,
	chatGW chat.ChatGW,
	bookingRepo bookings.BookingRepo,
	blobStore storage.BlobStore,
) (chat.ChatUC, error) {
	return &chatUC{
		cfg:         cfg,
		chatRepo:    chatRepo,
		chatGW:      chatGW,
		bookingRepo: bookingRepo,
		blobStore:   blobStore,
	}, nil
}

// requireParty loads the booking and verifies the principal is the owner
// or the assigned rider. Everyone else is shut out of the conversation.
func (uc *chatUC) requireParty(ctx context.Context, bookingID, principalID uuid.UUID) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(principalID) {
		return nil, apperrors.ErrMessageNotAllowed
	}
	return booking, nil
}

// SendMessage stores a message on the booking's log and pushes it to
// subscribed parties.
func (uc *chatUC) SendMessage(ctx context.Context, bookingID, senderID uuid.UUID, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("content", "is required")
	}
	if len(content) > maxMessageLength {
		return nil, apperrors.NewValidationError("content", "exceeds maximum length")
	}

	if _, err := uc.requireParty(ctx, bookingID, senderID); err != nil {
		return nil, err
	}

	stored, err := uc.chatRepo.InsertMessage(ctx, &models.Message{
		ID:        uuid.New(),
		BookingID: bookingID,
		SenderID:  senderID,
		Content:   content,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.chatGW.PublishMessage(ctx, &models.MessageEvent{Message: *stored}); err != nil {
		// The message is committed; subscribers catch up on the next poll sweep
		logger.Warn("Failed to push chat message",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}

	enriched := models.ChatMessage{Message: *stored}
	if profile, err := uc.chatRepo.GetProfile(ctx, senderID); err == nil {
		enriched.Sender = *profile
	}
	return &enriched, nil
}

// GetMessages returns the booking's full conversation, enriched with
// sender profiles. A message whose sender cannot be resolved is dropped
// rather than failing the whole read.
func (uc *chatUC) GetMessages(ctx context.Context, bookingID, principalID uuid.UUID) ([]models.ChatMessage, error) {
	if _, err := uc.requireParty(ctx, bookingID, principalID); err != nil {
		return nil, err
	}

	messages, err := uc.chatRepo.ListMessages(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return uc.enrich(ctx, messages), nil
}

// enrich resolves sender profiles, caching per sender within the call.
// Unresolvable senders cost that sender's messages, not the batch.
func (uc *chatUC) enrich(ctx context.Context, messages []*models.Message) []models.ChatMessage {
	profiles := make(map[uuid.UUID]*models.Profile)
	failed := make(map[uuid.UUID]struct{})

	enriched := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if _, bad := failed[msg.SenderID]; bad {
			continue
		}
		profile, ok := profiles[msg.SenderID]
		if !ok {
			var err error
			profile, err = uc.chatRepo.GetProfile(ctx, msg.SenderID)
			if err != nil {
				logger.Warn("Dropping message with unresolvable sender",
					logger.String("message_id", msg.ID.String()),
					logger.String("sender_id", msg.SenderID.String()),
					logger.Err(err))
				failed[msg.SenderID] = struct{}{}
				continue
			}
			profiles[msg.SenderID] = profile
		}
		enriched = append(enriched, models.ChatMessage{Message: *msg, Sender: *profile})
	}
	return enriched
}

// OpenChannel opens a live conversation stream for one consumer. The
// channel starts from a snapshot, then stays current through poll sweeps
// and the push subscription; the two paths are merged into one ordered
// view so every message appears exactly once, in position.
func (uc *chatUC) OpenChannel(ctx context.Context, bookingID, principalID uuid.UUID) (*chat.Channel, error) {
	if _, err := uc.requireParty(ctx, bookingID, principalID); err != nil {
		return nil, err
	}

	push := make(chan models.ChatMessage, 32)
	sub, err := uc.chatGW.SubscribeMessages(bookingID, func(event models.MessageEvent) {
		enriched := uc.enrich(context.Background(), []*models.Message{&event.Message})
		if len(enriched) == 0 {
			return
		}
		select {
		case push <- enriched[0]:
		default:
			// Push buffer is full; the poll sweep delivers this one
			logger.Debug("Chat push buffer full",
				logger.String("booking_id", bookingID.String()))
		}
	})
	if err != nil {
		return nil, apperrors.NewTransientError("chat.subscribe", err)
	}

	channel := chat.NewChannel(ctx, bookingID, chat.ChannelOptions{
		Fetch: func(ctx context.Context) ([]models.ChatMessage, error) {
			messages, err := uc.chatRepo.ListMessages(ctx, bookingID)
			if err != nil {
				return nil, err
			}
			return uc.enrich(ctx, messages), nil
		},
		Push:         push,
		PollInterval: uc.cfg.Chat.PollInterval,
		Cleanup: func() {
			if err := sub.Unsubscribe(); err != nil {
				logger.Warn("Failed to unsubscribe chat channel",
					logger.String("booking_id", bookingID.String()),
					logger.Err(err))
			}
		},
	})

	return channel, nil
}

// AttachFile uploads a blob and posts a message referencing it
func (uc *chatUC) AttachFile(ctx context.Context, bookingID, senderID uuid.UUID, filename, contentType string, body io.Reader) (*models.ChatMessage, error) {
	if filename == "" {
		return nil, apperrors.NewValidationError("filename", "is required")
	}
	if body == nil {
		return nil, apperrors.NewValidationError("file", "is required")
	}

	if _, err := uc.requireParty(ctx, bookingID, senderID); err != nil {
		return nil, err
	}

	url, err := uc.blobStore.Upload(ctx, bookingID, filename, contentType, body)
	if err != nil {
		return nil, apperrors.NewTransientError("attachment.upload", err)
	}

	prefix := models.ContentPrefixFile
	if strings.HasPrefix(contentType, "image/") {
		prefix = models.ContentPrefixImage
	}

	return uc.SendMessage(ctx, bookingID, senderID, prefix+url)
}

// Presence tracks which parties are connected to a booking's chat

// MarkPresent records the principal as connected
func (uc *chatUC) MarkPresent(ctx context.Context, bookingID, principalID uuid.UUID) error {
	return uc.chatRepo.MarkPresent(ctx, bookingID, principalID)
}

// ClearPresent removes the principal from the presence set
func (uc *chatUC) ClearPresent(ctx context.Context, bookingID, principalID uuid.UUID) error {
	return uc.chatRepo.ClearPresent(ctx, bookingID, principalID)
}
