package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lupao-eth/trip-task/internal/pkg/apperrors"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
	"github.com/Lupao-eth/trip-task/services/users/mocks"
)

func newUsersContext(t *testing.T, method, target, body string, principalID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principalID != uuid.Nil {
		c.Set("user_id", principalID)
	}
	return c, rec
}

func TestGetMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodGet, "/users/me", "", userID)

		mockUC.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(&models.Profile{ID: userID, Username: "andi"}, nil)

		err := handler.GetMe(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool           `json:"success"`
			Data    models.Profile `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "andi", resp.Data.Username)
	})

	t.Run("No profile yet", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodGet, "/users/me", "", userID)

		mockUC.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(nil, apperrors.ErrProfileNotFound)

		err := handler.GetMe(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing principal", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodGet, "/users/me", "", uuid.Nil)

		err := handler.GetMe(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		body := `{"username":"budi","avatar_url":"https://cdn.example.com/budi.png"}`
		c, rec := newUsersContext(t, http.MethodPut, "/users/me", body, userID)

		mockUC.EXPECT().
			UpsertProfile(gomock.Any(), userID, "budi", "https://cdn.example.com/budi.png").
			Return(&models.Profile{ID: userID, Username: "budi"}, nil)

		err := handler.UpdateMe(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Validation error maps to 400", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodPut, "/users/me", `{"username":""}`, userID)

		mockUC.EXPECT().
			UpsertProfile(gomock.Any(), userID, "", "").
			Return(nil, apperrors.NewValidationError("username", "is required"))

		err := handler.UpdateMe(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegisterRiderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		body := `{"vehicle_type":"motorcycle","vehicle_plate":"B 1234 XYZ"}`
		c, rec := newUsersContext(t, http.MethodPost, "/users/me/rider", body, userID)

		mockUC.EXPECT().
			RegisterRider(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *models.RegisterRiderRequest) (*models.RiderProfile, error) {
				assert.Equal(t, "motorcycle", req.VehicleType)
				return &models.RiderProfile{UserID: userID, VehicleType: req.VehicleType}, nil
			})

		err := handler.RegisterRider(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Requires existing profile", func(t *testing.T) {
		body := `{"vehicle_type":"motorcycle"}`
		c, rec := newUsersContext(t, http.MethodPost, "/users/me/rider", body, userID)

		mockUC.EXPECT().
			RegisterRider(gomock.Any(), userID, gomock.Any()).
			Return(nil, apperrors.ErrProfileNotFound)

		err := handler.RegisterRider(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSetAvailabilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUsersHandler(mockUC)

	riderID := uuid.New()

	t.Run("Toggle on", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodPost, "/users/me/rider/availability", `{"available":true}`, riderID)

		mockUC.EXPECT().
			SetAvailability(gomock.Any(), riderID, true).
			Return(&models.RiderProfile{UserID: riderID, Available: true}, nil)

		err := handler.SetAvailability(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data models.RiderProfile `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Available)
	})

	t.Run("Not a rider", func(t *testing.T) {
		c, rec := newUsersContext(t, http.MethodPost, "/users/me/rider/availability", `{"available":true}`, riderID)

		mockUC.EXPECT().
			SetAvailability(gomock.Any(), riderID, true).
			Return(nil, apperrors.ErrRiderProfileNotFound)

		err := handler.SetAvailability(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
