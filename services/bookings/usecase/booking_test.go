package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/services/bookings/mocks"
)

type bookingUCMocks struct {
	repo *mocks.MockBookingRepo
	gw   *mocks.MockBookingGW
	gate *mocks.MockRiderGate
}

func setupBookingUC(t *testing.T) (*bookingUC, bookingUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := bookingUCMocks{
		repo: mocks.NewMockBookingRepo(ctrl),
		gw:   mocks.NewMockBookingGW(ctrl),
		gate: mocks.NewMockRiderGate(ctrl),
	}

	uc, err := NewBookingUC(&models.Config{}, m.repo, m.gw, m.gate)
	require.NoError(t, err)

	return uc.(*bookingUC), m, ctrl
}

func riderProfile(riderID uuid.UUID) *models.RiderProfile {
	return &models.RiderProfile{
		UserID:      riderID,
		Available:   true,
		VehicleType: "motorcycle",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	req := &models.CreateBookingRequest{
		OwnerID:     ownerID,
		Pickup:      "Station Square",
		Dropoff:     "Harbor View 12",
		ASAP:        true,
		Category:    models.BookingCategoryTrip,
		DisplayName: "andi",
	}

	m.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) (*models.Booking, error) {
			assert.Equal(t, ownerID, b.OwnerID)
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Nil(t, b.ScheduledAt)
			assert.NotEqual(t, uuid.Nil, b.ID)
			stored := *b
			stored.CreatedAt = time.Now()
			stored.UpdatedAt = stored.CreatedAt
			return &stored, nil
		})
	m.gw.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	booking, err := uc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc, _, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)
	ownerID := uuid.New()

	testCases := []struct {
		name  string
		req   *models.CreateBookingRequest
		field string
	}{
		{
			name:  "Missing pickup",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Dropoff: "x", ASAP: true, Category: models.BookingCategoryTrip, DisplayName: "a"},
			field: "pickup",
		},
		{
			name:  "Missing dropoff",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Pickup: "x", ASAP: true, Category: models.BookingCategoryTrip, DisplayName: "a"},
			field: "dropoff",
		},
		{
			name:  "Missing display name",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Pickup: "x", Dropoff: "y", ASAP: true, Category: models.BookingCategoryTask},
			field: "display_name",
		},
		{
			name:  "Unknown category",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Pickup: "x", Dropoff: "y", ASAP: true, Category: "DELIVERY", DisplayName: "a"},
			field: "category",
		},
		{
			name:  "Neither asap nor scheduled",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Pickup: "x", Dropoff: "y", Category: models.BookingCategoryTrip, DisplayName: "a"},
			field: "scheduled_at",
		},
		{
			name:  "Scheduled in the past",
			req:   &models.CreateBookingRequest{OwnerID: ownerID, Pickup: "x", Dropoff: "y", ScheduledAt: &past, Category: models.BookingCategoryTrip, DisplayName: "a"},
			field: "scheduled_at",
		},
		{
			name:  "Missing owner",
			req:   &models.CreateBookingRequest{Pickup: "x", Dropoff: "y", ScheduledAt: &future, Category: models.BookingCategoryTrip, DisplayName: "a"},
			field: "owner_id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking, err := uc.CreateBooking(context.Background(), tc.req)
			assert.Nil(t, booking)
			require.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestAcceptBooking_Success(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	pending := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusPending}
	accepted := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}

	m.gate.EXPECT().GetRiderProfile(gomock.Any(), riderID).Return(riderProfile(riderID), nil)
	m.gate.EXPECT().IsRiderAvailable(gomock.Any(), riderID).Return(true, nil)
	m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)
	m.repo.EXPECT().AcceptBooking(gomock.Any(), bookingID, riderID).Return(accepted, nil)
	m.gw.EXPECT().
		PublishBookingAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.BookingEvent) error {
			assert.Equal(t, bookingID, event.BookingID)
			assert.Equal(t, models.BookingStatusAccepted, event.Status)
			assert.Equal(t, riderID, event.ActorID)
			return nil
		})

	got, err := uc.AcceptBooking(context.Background(), bookingID, riderID)
	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.BookingStatusAccepted, got.Status)
}

func TestAcceptBooking_AlreadyClaimed(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	riderID := uuid.New()
	pending := &models.Booking{ID: bookingID, OwnerID: uuid.New(), Status: models.BookingStatusPending}

	m.gate.EXPECT().GetRiderProfile(gomock.Any(), riderID).Return(riderProfile(riderID), nil)
	m.gate.EXPECT().IsRiderAvailable(gomock.Any(), riderID).Return(true, nil)
	m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)
	// Another rider won the conditioned write between the read and this accept
	m.repo.EXPECT().AcceptBooking(gomock.Any(), bookingID, riderID).Return(nil, apperrors.ErrBookingUnavailable)

	got, err := uc.AcceptBooking(context.Background(), bookingID, riderID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrBookingUnavailable)
}

func TestAcceptBooking_Gates(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("No rider profile", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		m.gate.EXPECT().GetRiderProfile(gomock.Any(), riderID).Return(nil, apperrors.ErrRiderProfileNotFound)

		got, err := uc.AcceptBooking(context.Background(), bookingID, riderID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrRiderProfileNotFound)
	})

	t.Run("Rider unavailable", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		m.gate.EXPECT().GetRiderProfile(gomock.Any(), riderID).Return(riderProfile(riderID), nil)
		m.gate.EXPECT().IsRiderAvailable(gomock.Any(), riderID).Return(false, nil)

		got, err := uc.AcceptBooking(context.Background(), bookingID, riderID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrRiderUnavailable)
	})

	t.Run("Owner cannot accept own booking", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		pending := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusPending}

		m.gate.EXPECT().GetRiderProfile(gomock.Any(), ownerID).Return(riderProfile(ownerID), nil)
		m.gate.EXPECT().IsRiderAvailable(gomock.Any(), ownerID).Return(true, nil)
		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)

		got, err := uc.AcceptBooking(context.Background(), bookingID, ownerID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})
}

func TestAdvanceStatus(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Accepted to on the way", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		current := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}
		updated := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusOnTheWay}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(current, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusAccepted, models.BookingStatusOnTheWay).Return(updated, nil)
		m.gw.EXPECT().PublishBookingStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.AdvanceStatus(context.Background(), bookingID, riderID, models.BookingStatusOnTheWay)
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.BookingStatusOnTheWay, got.Status)
	})

	t.Run("Skipping a step is rejected", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		current := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(current, nil)

		got, err := uc.AdvanceStatus(context.Background(), bookingID, riderID, models.BookingStatusCompleted)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})

	t.Run("Terminal state admits nothing", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		current := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusCompleted}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(current, nil)

		got, err := uc.AdvanceStatus(context.Background(), bookingID, riderID, models.BookingStatusOnTheWay)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})

	t.Run("Only the assigned rider advances", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		current := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(current, nil)

		got, err := uc.AdvanceStatus(context.Background(), bookingID, ownerID, models.BookingStatusOnTheWay)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})
}

func TestCancelBooking(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Owner cancels pending", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		pending := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusPending}
		cancelled := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusCancelled, CancelledBy: &ownerID}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)
		m.repo.EXPECT().CancelBooking(gomock.Any(), bookingID, ownerID, "change of plans").Return(cancelled, nil)
		m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.CancelBooking(context.Background(), bookingID, ownerID, "change of plans")
		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.BookingStatusCancelled, got.Status)
	})

	t.Run("Assigned rider cancels accepted", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		accepted := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}
		cancelled := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusCancelled, CancelledBy: &riderID}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(accepted, nil)
		m.repo.EXPECT().CancelBooking(gomock.Any(), bookingID, riderID, "").Return(cancelled, nil)
		m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.CancelBooking(context.Background(), bookingID, riderID, "")
		assert.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("Stranger cannot cancel", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		accepted := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(accepted, nil)

		got, err := uc.CancelBooking(context.Background(), bookingID, uuid.New(), "")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})

	t.Run("Rider cannot cancel pending", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		pending := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusPending}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)

		got, err := uc.CancelBooking(context.Background(), bookingID, riderID, "")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})

	t.Run("On the way is past the point of no return", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		onTheWay := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusOnTheWay}

		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(onTheWay, nil)

		got, err := uc.CancelBooking(context.Background(), bookingID, ownerID, "")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestGetBooking_Visibility(t *testing.T) {
	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()

	t.Run("Pending booking is publicly visible", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		pending := &models.Booking{ID: bookingID, OwnerID: ownerID, Status: models.BookingStatusPending}
		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pending, nil)

		got, err := uc.GetBooking(context.Background(), bookingID, uuid.New())
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Accepted booking is party only", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		accepted := &models.Booking{ID: bookingID, OwnerID: ownerID, RiderID: &riderID, Status: models.BookingStatusAccepted}
		m.repo.EXPECT().GetBooking(gomock.Any(), bookingID).Return(accepted, nil)

		got, err := uc.GetBooking(context.Background(), bookingID, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	})
}

func TestListAvailableBookings_RequiresRiderProfile(t *testing.T) {
	uc, m, ctrl := setupBookingUC(t)
	defer ctrl.Finish()

	riderID := uuid.New()
	m.gate.EXPECT().GetRiderProfile(gomock.Any(), riderID).Return(nil, apperrors.ErrRiderProfileNotFound)

	got, err := uc.ListAvailableBookings(context.Background(), riderID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrRiderProfileNotFound)
}

func TestListBookings_StatusFilter(t *testing.T) {
	principalID := uuid.New()

	t.Run("Filter is passed through", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		m.repo.EXPECT().
			ListByParticipant(gomock.Any(), principalID, models.BookingStatusCompleted).
			Return([]*models.Booking{}, nil)

		_, err := uc.ListBookings(context.Background(), principalID, models.BookingStatusCompleted)
		assert.NoError(t, err)
	})

	t.Run("Empty filter means all", func(t *testing.T) {
		uc, m, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		m.repo.EXPECT().
			ListByParticipant(gomock.Any(), principalID, models.BookingStatus("")).
			Return([]*models.Booking{}, nil)

		_, err := uc.ListBookings(context.Background(), principalID, "")
		assert.NoError(t, err)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		uc, _, ctrl := setupBookingUC(t)
		defer ctrl.Finish()

		got, err := uc.ListBookings(context.Background(), principalID, "TELEPORTING")
		assert.Nil(t, got)
		assert.True(t, apperrors.IsValidation(err))
	})
}
