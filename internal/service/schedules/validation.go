package schedules

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedules/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// normalizeInterval проверяет пару "HH:MM" и возвращает нормализованные значения.
// Конец должен быть строго позже начала
func normalizeInterval(start, end *string) (*string, *string, error) {
	if start == nil || end == nil {
		return nil, nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	from, err := types.NewTimeStringFromString(*start)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	to, err := types.NewTimeStringFromString(*end)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !from.IsBefore(to) {
		return nil, nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return ptr.Ptr(from.String()), ptr.Ptr(to.String()), nil
}

// validateAvailability валидирует строку недельного шаблона и нормализует времена
func validateAvailability(req *models.UpdateAvailabilityRequest) error {
	if req.DayOfWeek < int(time.Sunday) || req.DayOfWeek > int(time.Saturday) {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	// Нерабочий день может быть без времени
	if !req.IsAvailable && req.StartTime == nil && req.EndTime == nil {
		return nil
	}

	start, end, err := normalizeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	req.StartTime, req.EndTime = start, end

	return nil
}

// validateOverride валидирует исключение на дату и нормализует времена
func validateOverride(req *models.UpsertOverrideRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.IsDayOff {
		return nil
	}

	start, end, err := normalizeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	req.StartTime, req.EndTime = start, end

	return nil
}

// validatePeriod проверяет период запроса расписания
func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if to.Before(from) {
		return fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	if to.Sub(from) > time.Duration(domain.MaxScheduleRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: period must be at most %d days", ErrInvalidInput, domain.MaxScheduleRangeDays)
	}

	return nil
}
