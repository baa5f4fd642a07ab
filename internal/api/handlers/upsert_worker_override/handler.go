package upsert_worker_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
)

const (
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid override: either a day off or HH:MM times with start before end"
	msgWorkerNotFound     = "worker not found"
	msgForbidden          = "access denied"
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

// Handle PUT /api/v1/workers/{workerId}/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("PUT /workers/{id}/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /workers/{id}/overrides/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	var req UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /workers/{id}/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertOverride(r.Context(), req.ToServiceRequest(userID, workerID, date))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /workers/{id}/overrides/{date} - Invalid input: worker_id=%s, %v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedules.ErrWorkerNotFound):
			h.logger.Warn("PUT /workers/{id}/overrides/{date} - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT /workers/{id}/overrides/{date} - Access denied: worker_id=%s, user_id=%s", workerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /workers/{id}/overrides/{date} - Failed to save override: worker_id=%s, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /workers/{id}/overrides/{date} - Override saved successfully: worker_id=%s, date=%s, day_off=%t",
		workerID, result.Date, result.IsDayOff)
	handlers.RespondJSON(w, http.StatusOK, result)
}
