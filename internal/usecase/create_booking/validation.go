package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VendorID) == "" {
		return fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.WorkerID) == "" {
		return fmt.Errorf("%w: workerId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
