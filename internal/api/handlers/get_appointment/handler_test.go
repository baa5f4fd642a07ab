package get_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string, userID string) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, userID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc AppointmentService, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/appointments/{id}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/appointments/a-1", nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, "a-1", "u-1").Return(&models.AppointmentResponse{ID: "a-1", UserID: "u-1", Status: "PENDING"}, nil)

	rec := serve(svc, "u-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "a-1", body.ID)
	assert.Equal(t, "PENDING", body.Status)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: appointments.ErrAppointmentNotFound, want: http.StatusNotFound},
		{name: "foreign appointment", err: appointments.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetByID", mock.Anything, "a-1", "u-1").Return(nil, tt.err)

			assert.Equal(t, tt.want, serve(svc, "u-1").Code)
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		svc := &mockService{}
		assert.Equal(t, http.StatusUnauthorized, serve(svc, "").Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})
}
