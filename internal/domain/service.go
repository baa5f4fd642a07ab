package domain

import "time"

// Service represents a bookable offering of a vendor
type Service struct {
	ID              string
	VendorID        string
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
}

// BelongsTo returns true if the service is offered by the vendor
func (s *Service) BelongsTo(vendorID string) bool {
	return s.VendorID == vendorID
}

// Duration returns the service duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
