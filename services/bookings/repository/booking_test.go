package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BookingRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var bookingTestColumns = []string{
	"id", "owner_id", "rider_id", "pickup", "dropoff", "scheduled_at",
	"category", "display_name", "notes", "status",
	"cancelled_by", "cancellation_reason",
	"created_at", "updated_at", "accepted_at", "completed_at", "cancelled_at",
}

func pendingBookingRow(id, ownerID uuid.UUID, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(bookingTestColumns).
		AddRow(id, ownerID, nil, "Station Square", "Harbor View 12", nil,
			"TRIP", "andi", "", "PENDING",
			nil, nil,
			createdAt, createdAt, nil, nil, nil)
}

func TestCreateBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, stored *models.Booking, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*INSERT INTO bookings").
					WithArgs(bookingID, ownerID, "Station Square", "Harbor View 12", nil,
						models.BookingCategoryTrip, "andi", "", models.BookingStatusPending).
					WillReturnRows(pendingBookingRow(bookingID, ownerID, now))
			},
			assertFunc: func(t *testing.T, stored *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, stored)
				assert.Equal(t, bookingID, stored.ID)
				assert.Equal(t, models.BookingStatusPending, stored.Status)
				assert.Nil(t, stored.RiderID)
				assert.False(t, stored.CreatedAt.IsZero())
			},
		},
		{
			name: "Store failure is transient",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^\\s*INSERT INTO bookings").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, stored *models.Booking, err error) {
				assert.Nil(t, stored)
				assert.True(t, apperrors.IsTransient(err))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup(mock)

			booking := &models.Booking{
				ID:          bookingID,
				OwnerID:     ownerID,
				Pickup:      "Station Square",
				Dropoff:     "Harbor View 12",
				Category:    models.BookingCategoryTrip,
				DisplayName: "andi",
			}
			stored, err := repo.CreateBooking(context.Background(), booking)
			tc.assertFunc(t, stored, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	ownerID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id").
			WithArgs(bookingID).
			WillReturnRows(pendingBookingRow(bookingID, ownerID, time.Now()))

		booking, err := repo.GetBooking(context.Background(), bookingID)
		assert.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, bookingID, booking.ID)
		assert.Equal(t, ownerID, booking.OwnerID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM bookings WHERE id").
			WithArgs(bookingID).
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.GetBooking(context.Background(), bookingID)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	})
}

func TestAcceptBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()
	now := time.Now()

	t.Run("Claims pending booking", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingTestColumns).
			AddRow(bookingID, ownerID, riderID, "Station Square", "Harbor View 12", nil,
				"TRIP", "andi", "", "ACCEPTED",
				nil, nil,
				now, now, now, nil, nil)
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WithArgs(bookingID, riderID, models.BookingStatusAccepted, models.BookingStatusPending).
			WillReturnRows(rows)

		booking, err := repo.AcceptBooking(context.Background(), bookingID, riderID)
		assert.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, models.BookingStatusAccepted, booking.Status)
		require.NotNil(t, booking.RiderID)
		assert.Equal(t, riderID, *booking.RiderID)
		require.NotNil(t, booking.AcceptedAt)
	})

	t.Run("Already claimed returns unavailable", func(t *testing.T) {
		// The conditioned write matches no rows once another rider
		// has claimed the booking or the owner has cancelled it.
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WithArgs(bookingID, riderID, models.BookingStatusAccepted, models.BookingStatusPending).
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.AcceptBooking(context.Background(), bookingID, riderID)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrBookingUnavailable)
	})

	t.Run("Store failure is transient", func(t *testing.T) {
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WillReturnError(errors.New("broken pipe"))

		booking, err := repo.AcceptBooking(context.Background(), bookingID, riderID)
		assert.Nil(t, booking)
		assert.True(t, apperrors.IsTransient(err))
		assert.NotErrorIs(t, err, apperrors.ErrBookingUnavailable)
	})
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	ownerID := uuid.New()
	riderID := uuid.New()
	now := time.Now()

	t.Run("Accepted to on the way", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingTestColumns).
			AddRow(bookingID, ownerID, riderID, "Station Square", "Harbor View 12", nil,
				"TRIP", "andi", "", "ON_THE_WAY",
				nil, nil,
				now, now, now, nil, nil)
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WithArgs(bookingID, models.BookingStatusAccepted, models.BookingStatusOnTheWay, models.BookingStatusCompleted).
			WillReturnRows(rows)

		booking, err := repo.UpdateStatus(context.Background(), bookingID, models.BookingStatusAccepted, models.BookingStatusOnTheWay)
		assert.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, models.BookingStatusOnTheWay, booking.Status)
	})

	t.Run("Concurrent change rejects transition", func(t *testing.T) {
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WithArgs(bookingID, models.BookingStatusAccepted, models.BookingStatusOnTheWay, models.BookingStatusCompleted).
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.UpdateStatus(context.Background(), bookingID, models.BookingStatusAccepted, models.BookingStatusOnTheWay)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestCancelBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	t.Run("Pending booking cancels", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingTestColumns).
			AddRow(bookingID, ownerID, nil, "Station Square", "Harbor View 12", nil,
				"TRIP", "andi", "", "CANCELLED",
				ownerID, "changed my mind",
				now, now, nil, nil, now)
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WithArgs(bookingID, ownerID, "changed my mind",
				models.BookingStatusCancelled, models.BookingStatusPending, models.BookingStatusAccepted).
			WillReturnRows(rows)

		booking, err := repo.CancelBooking(context.Background(), bookingID, ownerID, "changed my mind")
		assert.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, models.BookingStatusCancelled, booking.Status)
		require.NotNil(t, booking.CancelledBy)
		assert.Equal(t, ownerID, *booking.CancelledBy)
	})

	t.Run("Already final rejects cancel", func(t *testing.T) {
		mock.ExpectQuery("^\\s*UPDATE bookings").
			WillReturnError(sql.ErrNoRows)

		booking, err := repo.CancelBooking(context.Background(), bookingID, ownerID, "")
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestListPending(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	first := uuid.New()
	second := uuid.New()
	ownerID := uuid.New()
	base := time.Now().Add(-time.Hour)

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow(first, ownerID, nil, "Station Square", "Harbor View 12", nil,
			"TRIP", "andi", "", "PENDING", nil, nil,
			base, base, nil, nil, nil).
		AddRow(second, ownerID, nil, "North Gate", "Riverside 3", nil,
			"TASK", "andi", "buy groceries", "PENDING", nil, nil,
			base.Add(time.Minute), base.Add(time.Minute), nil, nil, nil)
	mock.ExpectQuery("^\\s*SELECT (.+) FROM bookings").
		WithArgs(models.BookingStatusPending).
		WillReturnRows(rows)

	bookings, err := repo.ListPending(context.Background())
	assert.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, first, bookings[0].ID)
	assert.Equal(t, second, bookings[1].ID)
}

func TestListByParticipant(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	principalID := uuid.New()
	bookingID := uuid.New()
	base := time.Now().Add(-time.Hour)

	t.Run("All statuses", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingTestColumns).
			AddRow(bookingID, principalID, nil, "Station Square", "Harbor View 12", nil,
				"TRIP", "andi", "", "PENDING", nil, nil,
				base, base, nil, nil, nil)
		mock.ExpectQuery("^\\s*SELECT (.+) FROM bookings").
			WithArgs(principalID).
			WillReturnRows(rows)

		bookings, err := repo.ListByParticipant(context.Background(), principalID, "")
		assert.NoError(t, err)
		require.Len(t, bookings, 1)
	})

	t.Run("Status filter binds a second argument", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingTestColumns)
		mock.ExpectQuery("^\\s*SELECT (.+) FROM bookings").
			WithArgs(principalID, models.BookingStatusCompleted).
			WillReturnRows(rows)

		bookings, err := repo.ListByParticipant(context.Background(), principalID, models.BookingStatusCompleted)
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})
}
