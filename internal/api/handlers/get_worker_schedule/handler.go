package get_worker_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
)

const (
	msgInvalidPeriod  = "from and to are required dates in YYYY-MM-DD format"
	msgInvalidInput   = "invalid period"
	msgWorkerNotFound = "worker not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/schedule
// Query params: from, to (YYYY-MM-DD, обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID := mux.Vars(r)["workerId"]

	query := r.URL.Query()
	from, err := handlers.ParseDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/schedule - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := handlers.ParseDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/schedule - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), &models.GetScheduleRequest{
		WorkerID: workerID,
		From:     from,
		To:       to,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/schedule - Invalid period: worker_id=%s, %v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedules.ErrWorkerNotFound):
			h.logger.Warn("GET /workers/{id}/schedule - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("GET /workers/{id}/schedule - Failed to get schedule: worker_id=%s, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/schedule - Schedule retrieved successfully: worker_id=%s, overrides=%d",
		workerID, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
