package get_vendor_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// from и to принимаются в RFC 3339 или как дата YYYY-MM-DD
func ToServiceRequest(vendorID, userID string, workerID, status *string, fromStr, toStr, includeInactiveStr string) (*models.GetVendorAppointmentsRequest, error) {
	req := &models.GetVendorAppointmentsRequest{
		UserID:   userID,
		VendorID: vendorID,
		WorkerID: workerID,
		Status:   status,
	}

	if fromStr != "" {
		from, err := parseBound(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := parseBound(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		req.To = &to
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func parseBound(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
