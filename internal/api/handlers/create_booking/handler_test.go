package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{"vendorId":"v-1","serviceId":"s-1","workerId":"w-1","date":"2026-10-19","time":"10:00","notes":"first visit"}`

func doRequest(uc CreateBookingUseCase, body, userID string) *httptest.ResponseRecorder {
	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, logger.NewNop()).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &mockUseCase{}
	start := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.UserID == "u-1" &&
			req.WorkerID == "w-1" &&
			req.StartTime == types.TimeString("10:00") &&
			req.Date.Equal(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)) &&
			req.Notes != nil && *req.Notes == "first visit"
	})).Return(&createBooking.Response{
		ID:        "a-1",
		UserID:    "u-1",
		VendorID:  "v-1",
		ServiceID: "s-1",
		WorkerID:  "w-1",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    "PENDING",
	}, nil)

	rec := doRequest(uc, validBody, "u-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "a-1", body.ID)
	assert.Equal(t, "PENDING", body.Status)
	assert.True(t, body.EndTime.Equal(start.Add(30*time.Minute)))
	uc.AssertExpectations(t)
}

func TestHandler_RequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		userID  string
		want    int
		message string
	}{
		{name: "no user", body: validBody, want: http.StatusUnauthorized},
		{name: "broken json", body: `{"vendorId":`, userID: "u-1", want: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "unknown field", body: `{"vendorId":"v-1","serviceId":"s-1","workerId":"w-1","date":"2026-10-19","time":"10:00","extra":1}`, userID: "u-1", want: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "missing worker", body: `{"vendorId":"v-1","serviceId":"s-1","date":"2026-10-19","time":"10:00"}`, userID: "u-1", want: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "bad date", body: `{"vendorId":"v-1","serviceId":"s-1","workerId":"w-1","date":"19/10/2026","time":"10:00"}`, userID: "u-1", want: http.StatusBadRequest, message: msgInvalidDate},
		{name: "bad time", body: `{"vendorId":"v-1","serviceId":"s-1","workerId":"w-1","date":"2026-10-19","time":"25:00"}`, userID: "u-1", want: http.StatusBadRequest, message: msgInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := doRequest(uc, tt.body, tt.userID)

			assert.Equal(t, tt.want, rec.Code)
			if tt.message != "" {
				assert.Contains(t, rec.Body.String(), tt.message)
			}
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: createBooking.ErrSlotNotAvailable, want: http.StatusConflict},
		{err: createBooking.ErrVendorNotFound, want: http.StatusNotFound},
		{err: createBooking.ErrServiceNotFound, want: http.StatusNotFound},
		{err: createBooking.ErrWorkerNotFound, want: http.StatusNotFound},
		{err: createBooking.ErrVendorInactive, want: http.StatusBadRequest},
		{err: createBooking.ErrWorkerNotEligible, want: http.StatusBadRequest},
		{err: createBooking.ErrWorkerUnavailable, want: http.StatusBadRequest},
		{err: createBooking.ErrInvalidDate, want: http.StatusBadRequest},
		{err: createBooking.ErrInvalidTimeSlot, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: starts at 10:00", createBooking.ErrTooLateToBook), want: http.StatusBadRequest},
		{err: createBooking.ErrInvalidInput, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: db down", createBooking.ErrInternal), want: http.StatusInternalServerError},
		{err: errors.New("unexpected"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(uc, validBody, "u-1")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
