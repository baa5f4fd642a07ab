package get_user_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func (m *mockService) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.AppointmentListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc AppointmentService, target string) *httptest.ResponseRecorder {
	handler := middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "u-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserAppointments", mock.Anything, mock.MatchedBy(func(req *models.GetUserAppointmentsRequest) bool {
		return req.UserID == "u-1" && req.Status != nil && *req.Status == "CONFIRMED"
	})).Return(&models.AppointmentListResponse{
		Appointments: []models.AppointmentResponse{{ID: "a-2"}, {ID: "a-1"}},
	}, nil)

	rec := serve(svc, "/users/me/appointments?status=CONFIRMED")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Appointments, 2)
	assert.Equal(t, "a-2", body.Appointments[0].ID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: appointments.ErrInvalidInput, want: http.StatusBadRequest},
		{err: appointments.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetUserAppointments", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.want, serve(svc, "/users/me/appointments?status=WHATEVER").Code)
		})
	}
}
