package update_worker_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
)

const (
	msgInvalidDayOfWeek   = "dayOfWeek must be an integer from 0 (Sunday) to 6"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid availability: times must be HH:MM with start before end"
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

// Handle PUT /api/v1/workers/{workerId}/availability/{dayOfWeek}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID := vars["workerId"]

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil {
		h.logger.Warn("PUT /workers/{id}/availability/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /workers/{id}/availability/{day} - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /workers/{id}/availability/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAvailability(r.Context(), req.ToServiceRequest(userID, workerID, dayOfWeek))
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /workers/{id}/availability/{day} - Invalid input: worker_id=%s, %v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedules.ErrWorkerNotFound):
			h.logger.Warn("PUT /workers/{id}/availability/{day} - Worker not found: worker_id=%s", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT /workers/{id}/availability/{day} - Access denied: worker_id=%s, user_id=%s", workerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /workers/{id}/availability/{day} - Failed to update availability: worker_id=%s, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /workers/{id}/availability/{day} - Availability updated successfully: worker_id=%s, day=%d",
		workerID, dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, result)
}
