package domain

import (
	"fmt"
	"time"
)

// BookingPolicy service-wide slot generation settings.
// All "HH:MM" values, requested dates and "today" are interpreted in Location
type BookingPolicy struct {
	SlotIntervalMinutes     int
	MinBookingNoticeMinutes int
	Location                *time.Location
}

// DefaultBookingPolicy returns the policy with default values (UTC)
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		SlotIntervalMinutes:     DefaultSlotIntervalMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		Location:                time.UTC,
	}
}

// Validate checks the policy values
func (p BookingPolicy) Validate() error {
	if p.SlotIntervalMinutes < MinSlotIntervalMinutes || p.SlotIntervalMinutes > MaxSlotIntervalMinutes {
		return fmt.Errorf("slot interval must be between %d and %d minutes", MinSlotIntervalMinutes, MaxSlotIntervalMinutes)
	}
	if p.MinBookingNoticeMinutes < MinBookingNoticeMinutes || p.MinBookingNoticeMinutes > MaxBookingNoticeMinutes {
		return fmt.Errorf("min booking notice must be between %d and %d minutes", MinBookingNoticeMinutes, MaxBookingNoticeMinutes)
	}
	if p.Location == nil {
		return fmt.Errorf("location is required")
	}
	return nil
}

// SlotInterval returns the grid step
func (p BookingPolicy) SlotInterval() time.Duration {
	return time.Duration(p.SlotIntervalMinutes) * time.Minute
}

// MinNotice returns the minimum lead time
func (p BookingPolicy) MinNotice() time.Duration {
	return time.Duration(p.MinBookingNoticeMinutes) * time.Minute
}

// DateIn returns midnight of the calendar date of d in the policy location.
// The year, month and day of d are taken as is, the time of day is dropped
func (p BookingPolicy) DateIn(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, p.location())
}

// Today returns midnight of the current date in the policy location
func (p BookingPolicy) Today(now time.Time) time.Time {
	return p.DateIn(now.In(p.location()))
}

func (p BookingPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
