package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgInvalidInput       = "invalid request parameters"
	msgSlotNotAvailable   = "selected time slot is not available"
	msgVendorNotFound     = "vendor not found"
	msgVendorInactive     = "vendor is not accepting bookings"
	msgServiceNotFound    = "service not found"
	msgWorkerNotFound     = "worker not found"
	msgWorkerNotEligible  = "worker does not provide this service"
	msgWorkerUnavailable  = "worker is not working on this date"
	msgInvalidBookingDate = "cannot book appointments in the past"
	msgInvalidTimeSlot    = "invalid time slot"
	msgTooLateToBook      = "too late to book this slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, middleware.MsgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errParseTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user_id=%s, worker_id=%s, date=%s, time=%s",
				userID, req.WorkerID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVendorNotFound):
			h.logger.Warn("POST /appointments - Vendor not found: vendor_id=%s", req.VendorID)
			handlers.RespondNotFound(w, msgVendorNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: vendor_id=%s, service_id=%s", req.VendorID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrWorkerNotFound):
			h.logger.Warn("POST /appointments - Worker not found: vendor_id=%s, worker_id=%s", req.VendorID, req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, createBooking.ErrVendorInactive):
			h.logger.Warn("POST /appointments - Vendor inactive: vendor_id=%s", req.VendorID)
			handlers.RespondBadRequest(w, msgVendorInactive)

		case errors.Is(err, createBooking.ErrWorkerNotEligible):
			h.logger.Warn("POST /appointments - Worker not eligible: worker_id=%s, service_id=%s", req.WorkerID, req.ServiceID)
			handlers.RespondBadRequest(w, msgWorkerNotEligible)

		case errors.Is(err, createBooking.ErrWorkerUnavailable):
			h.logger.Warn("POST /appointments - Worker unavailable: worker_id=%s, date=%s", req.WorkerID, req.Date)
			handlers.RespondBadRequest(w, msgWorkerUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: worker_id=%s, date=%s, time=%s", req.WorkerID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: user_id=%s, date=%s, time=%s", userID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, vendor_id=%s, error=%v",
				userID, req.VendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, user_id=%s, worker_id=%s",
		result.ID, userID, result.WorkerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
