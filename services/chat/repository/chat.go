package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/constants"
	"github.com/Lupao-eth/trip-task/internal/pkg/database"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

// ChatRepo implements the chat repository interface
type ChatRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewChatRepository creates a new chat repository
func NewChatRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ChatRepo {
	return &ChatRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// InsertMessage stores a message and returns it with the commit timestamp.
// Ordering across senders comes from the database clock, so the stored
// created_at is what every reader sees, not the sender's local time.
func (r *ChatRepo) InsertMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO messages (id, booking_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, booking_id, sender_id, content, created_at`

	var stored models.Message
	err := r.db.QueryRowxContext(
		ctx,
		query,
		msg.ID,
		msg.BookingID,
		msg.SenderID,
		msg.Content,
	).StructScan(&stored)
	if err != nil {
		return nil, apperrors.NewTransientError("message.insert", err)
	}

	return &stored, nil
}

// ListMessages returns the booking's full message log in delivery order:
// creation time ascending, message ID as tie-break.
func (r *ChatRepo) ListMessages(ctx context.Context, bookingID uuid.UUID) ([]*models.Message, error) {
	query := `
		SELECT id, booking_id, sender_id, content, created_at
		FROM messages
		WHERE booking_id = $1
		ORDER BY created_at ASC, id ASC`

	var messages []*models.Message
	if err := r.db.SelectContext(ctx, &messages, query, bookingID); err != nil {
		return nil, apperrors.NewTransientError("message.list", err)
	}

	return messages, nil
}

// GetProfile retrieves the display profile for a user
func (r *ChatRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, username, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var profile models.Profile
	err := r.db.QueryRowxContext(ctx, query, userID).StructScan(&profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.NewTransientError("profile.get", err)
	}

	return &profile, nil
}

// MarkPresent records the user as connected to the booking's chat
func (r *ChatRepo) MarkPresent(ctx context.Context, bookingID, userID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyChatPresence, bookingID.String())
	return r.redisClient.SAdd(ctx, key, userID.String())
}

// ClearPresent removes the user from the booking's presence set
func (r *ChatRepo) ClearPresent(ctx context.Context, bookingID, userID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyChatPresence, bookingID.String())
	return r.redisClient.SRem(ctx, key, userID.String())
}

// ListPresent returns the user IDs currently connected to the booking's chat
func (r *ChatRepo) ListPresent(ctx context.Context, bookingID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf(constants.KeyChatPresence, bookingID.String())
	return r.redisClient.SMembers(ctx, key)
}
