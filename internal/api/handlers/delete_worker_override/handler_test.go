package delete_worker_override

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) DeleteOverride(ctx context.Context, req *models.DeleteOverrideRequest) error {
	return m.Called(ctx, req).Error(0)
}

func serve(svc ScheduleService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/workers/{workerId}/overrides/{date}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req.Header.Set(middleware.UserIDHeader, "owner-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "deleted", target: "/workers/w-1/overrides/2026-10-20", want: http.StatusNoContent},
		{name: "bad date", target: "/workers/w-1/overrides/tomorrow", want: http.StatusBadRequest},
		{name: "no override", target: "/workers/w-1/overrides/2026-10-20", err: schedules.ErrOverrideNotFound, want: http.StatusNotFound},
		{name: "no worker", target: "/workers/w-1/overrides/2026-10-20", err: schedules.ErrWorkerNotFound, want: http.StatusNotFound},
		{name: "not owner", target: "/workers/w-1/overrides/2026-10-20", err: schedules.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", target: "/workers/w-1/overrides/2026-10-20", err: schedules.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("DeleteOverride", mock.Anything, mock.MatchedBy(func(req *models.DeleteOverrideRequest) bool {
				return req.UserID == "owner-1" && req.WorkerID == "w-1"
			})).Return(tt.err)

			rec := serve(svc, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
