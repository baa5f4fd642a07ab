package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VendorID) == "" {
		return fmt.Errorf("%w: vendorId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.WorkerID != nil && strings.TrimSpace(*req.WorkerID) == "" {
		return fmt.Errorf("%w: workerId must not be empty", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
