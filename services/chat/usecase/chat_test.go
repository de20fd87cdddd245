package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	bookingmocks "github.com/Lupao-eth/trip-task/services/bookings/mocks"
	"github.com/Lupao-eth/trip-task/services/chat"
	"github.com/Lupao-eth/trip-task/services/chat/mocks"
)

type fakeBlobStore struct {
	url string
	err error
}

func (f *fakeBlobStore) Upload(ctx context.Context, bookingID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type chatUCMocks struct {
	repo        *mocks.MockChatRepo
	gw          *mocks.MockChatGW
	bookingRepo *bookingmocks.MockBookingRepo
	blobs       *fakeBlobStore
}

func setupChatUC(t *testing.T) (*chatUC, chatUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := chatUCMocks{
		repo:        mocks.NewMockChatRepo(ctrl),
		gw:          mocks.NewMockChatGW(ctrl),
		bookingRepo: bookingmocks.NewMockBookingRepo(ctrl),
		blobs:       &fakeBlobStore{url: "http://localhost:9000/bookings/x/file.png"},
	}

	cfg := &models.Config{
		Chat: models.ChatConfig{PollInterval: 10 * time.Millisecond},
	}
	uc, err := NewChatUC(cfg, m.repo, m.gw, m.bookingRepo, m.blobs)
	require.NoError(t, err)

	return uc.(*chatUC), m, ctrl
}

func partyBooking(bookingID, ownerID, riderID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:      bookingID,
		OwnerID: ownerID,
		RiderID: &riderID,
		Status:  models.BookingStatusAccepted,
	}
}

func TestSendMessage(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)
		m.repo.EXPECT().
			InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
				assert.Equal(t, bookingID, msg.BookingID)
				assert.Equal(t, ownerID, msg.SenderID)
				assert.Equal(t, "where are you?", msg.Content)
				stored := *msg
				stored.CreatedAt = time.Now()
				return &stored, nil
			})
		m.gw.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetProfile(gomock.Any(), ownerID).
			Return(&models.Profile{ID: ownerID, Username: "andi"}, nil)

		got, err := uc.SendMessage(context.Background(), bookingID, ownerID, "where are you?")
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "andi", got.Sender.Username)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("Push failure does not fail the send", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)
		m.repo.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
				stored := *msg
				stored.CreatedAt = time.Now()
				return &stored, nil
			})
		m.gw.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(assert.AnError)
		m.repo.EXPECT().GetProfile(gomock.Any(), ownerID).
			Return(&models.Profile{ID: ownerID, Username: "andi"}, nil)

		got, err := uc.SendMessage(context.Background(), bookingID, ownerID, "hello")
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Non-party is rejected", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)

		got, err := uc.SendMessage(context.Background(), bookingID, uuid.New(), "let me in")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrMessageNotAllowed)
	})

	t.Run("Empty content is rejected", func(t *testing.T) {
		uc, _, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		got, err := uc.SendMessage(context.Background(), bookingID, ownerID, "   ")
		assert.Nil(t, got)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Oversized content is rejected", func(t *testing.T) {
		uc, _, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		got, err := uc.SendMessage(context.Background(), bookingID, ownerID, strings.Repeat("a", maxMessageLength+1))
		assert.Nil(t, got)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestGetMessages_DropsUnresolvableSenders(t *testing.T) {
	uc, m, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()
	ghostID := uuid.New()
	base := time.Now()

	m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
		Return(partyBooking(bookingID, ownerID, riderID), nil)
	m.repo.EXPECT().ListMessages(gomock.Any(), bookingID).Return([]*models.Message{
		{ID: uuid.New(), BookingID: bookingID, SenderID: ownerID, Content: "hello", CreatedAt: base},
		{ID: uuid.New(), BookingID: bookingID, SenderID: ghostID, Content: "ghost", CreatedAt: base.Add(time.Second)},
		{ID: uuid.New(), BookingID: bookingID, SenderID: ownerID, Content: "anyone?", CreatedAt: base.Add(2 * time.Second)},
	}, nil)
	// Profile lookups are cached per sender within the call
	m.repo.EXPECT().GetProfile(gomock.Any(), ownerID).
		Return(&models.Profile{ID: ownerID, Username: "andi"}, nil).
		Times(1)
	m.repo.EXPECT().GetProfile(gomock.Any(), ghostID).
		Return(nil, apperrors.ErrProfileNotFound).
		Times(1)

	got, err := uc.GetMessages(context.Background(), bookingID, ownerID)
	assert.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Content)
	assert.Equal(t, "anyone?", got[1].Content)
	assert.Equal(t, "andi", got[0].Sender.Username)
}

func TestOpenChannel(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Snapshot then push delivery", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		base := time.Now()
		snapshot := []*models.Message{
			{ID: uuid.New(), BookingID: bookingID, SenderID: ownerID, Content: "hello", CreatedAt: base},
		}

		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)
		m.repo.EXPECT().ListMessages(gomock.Any(), bookingID).Return(snapshot, nil).AnyTimes()
		m.repo.EXPECT().GetProfile(gomock.Any(), gomock.Any()).
			Return(&models.Profile{Username: "someone"}, nil).AnyTimes()

		var pushHandler func(models.MessageEvent)
		sub := mocks.NewMockSubscription(ctrl)
		sub.EXPECT().Unsubscribe().Return(nil)
		m.gw.EXPECT().
			SubscribeMessages(bookingID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, handler func(models.MessageEvent)) (chat.Subscription, error) {
				pushHandler = handler
				return sub, nil
			})

		channel, err := uc.OpenChannel(context.Background(), bookingID, ownerID)
		require.NoError(t, err)
		defer channel.Close()

		first := <-channel.Messages()
		require.Len(t, first, 1)
		assert.Equal(t, "hello", first[0].Content)

		// A pushed event arrives enriched in the refreshed view
		pushHandler(models.MessageEvent{Message: models.Message{
			ID:        uuid.New(),
			BookingID: bookingID,
			SenderID:  riderID,
			Content:   "on my way",
			CreatedAt: base.Add(time.Second),
		}})

		select {
		case view := <-channel.Messages():
			require.Len(t, view, 2)
			assert.Equal(t, "hello", view[0].Content)
			assert.Equal(t, "on my way", view[1].Content)
		case <-time.After(2 * time.Second):
			t.Fatal("pushed message never delivered")
		}
	})

	t.Run("Non-party cannot open", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)

		channel, err := uc.OpenChannel(context.Background(), bookingID, uuid.New())
		assert.Nil(t, channel)
		assert.ErrorIs(t, err, apperrors.ErrMessageNotAllowed)
	})
}

func TestAttachFile(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Image gets the image prefix", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		// Party check runs for the upload and again for the send
		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil).
			Times(2)
		m.repo.EXPECT().
			InsertMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *models.Message) (*models.Message, error) {
				assert.True(t, strings.HasPrefix(msg.Content, models.ContentPrefixImage))
				stored := *msg
				stored.CreatedAt = time.Now()
				return &stored, nil
			})
		m.gw.EXPECT().PublishMessage(gomock.Any(), gomock.Any()).Return(nil)
		m.repo.EXPECT().GetProfile(gomock.Any(), ownerID).
			Return(&models.Profile{ID: ownerID, Username: "andi"}, nil)

		got, err := uc.AttachFile(context.Background(), bookingID, ownerID,
			"receipt.png", "image/png", strings.NewReader("fake-bytes"))
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsAttachment())
	})

	t.Run("Upload failure is transient", func(t *testing.T) {
		uc, m, ctrl := setupChatUC(t)
		defer ctrl.Finish()

		m.blobs.err = assert.AnError
		m.bookingRepo.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(partyBooking(bookingID, ownerID, riderID), nil)

		got, err := uc.AttachFile(context.Background(), bookingID, ownerID,
			"receipt.png", "image/png", strings.NewReader("fake-bytes"))
		assert.Nil(t, got)
		assert.True(t, apperrors.IsTransient(err))
	})
}
