package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

// TimeString время суток в формате "HH:MM" (24-часовой формат, с ведущими нулями)
// Нормализованные значения можно сравнивать лексикографически
type TimeString string

// NewTimeString создает TimeString из времени (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" (допускается "H:MM") и нормализует её
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(parsed), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes прибавляет минуты. Результат не может выйти за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes is out of day bounds", ErrInvalidTimeString, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// On привязывает время суток к календарной дате (секунды и наносекунды обнуляются).
// Используется часовой пояс переданной даты
func (t TimeString) On(date time.Time) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location()), nil
}
