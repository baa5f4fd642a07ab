package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// VendorStatus represents the lifecycle status of a vendor (salon)
type VendorStatus string

const (
	VendorStatusActive          VendorStatus = "ACTIVE"
	VendorStatusPendingApproval VendorStatus = "PENDING_APPROVAL"
	VendorStatusSuspended       VendorStatus = "SUSPENDED"
	VendorStatusInactive        VendorStatus = "INACTIVE"
)

// Vendor represents a salon offering services
type Vendor struct {
	ID             string
	OwnerID        string
	Name           string
	Status         VendorStatus
	OperatingHours OperatingHours
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive returns true if the vendor accepts bookings
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}

// IsOwnedBy returns true if the user owns the vendor
func (v *Vendor) IsOwnedBy(userID string) bool {
	return v.OwnerID != "" && v.OwnerID == userID
}

// DayHours operating hours of a vendor for one weekday
type DayHours struct {
	Open     *string `json:"open"`
	Close    *string `json:"close"`
	IsClosed bool    `json:"isClosed"`
}

// HasHours returns true if the day has both bounds and is not marked closed
func (d DayHours) HasHours() bool {
	return !d.IsClosed && d.Open != nil && d.Close != nil
}

// OperatingHours maps a lowercase English weekday name ("monday") to its hours.
// Stored as JSONB
type OperatingHours map[string]DayHours

// ForDate returns the hours for the weekday of the date
func (h OperatingHours) ForDate(date time.Time) (DayHours, bool) {
	hours, ok := h[WeekdayName(date.Weekday())]
	return hours, ok
}

// Scan implements sql.Scanner
func (h *OperatingHours) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*h = OperatingHours{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("operating hours: unsupported type %T", src)
	}

	hours := OperatingHours{}
	if err := json.Unmarshal(data, &hours); err != nil {
		return fmt.Errorf("operating hours: %w", err)
	}
	*h = hours
	return nil
}

// Value implements driver.Valuer
func (h OperatingHours) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

// WeekdayName returns the lowercase English name of the weekday
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}
