package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// SlotParams входные данные генерации слотов одного мастера
type SlotParams struct {
	Schedule     domain.EffectiveSchedule
	Duration     time.Duration         // Длительность услуги
	Interval     time.Duration         // Шаг сетки слотов
	Appointments []*domain.Appointment // Записи мастера на дату
	Date         time.Time             // Запрошенная дата
	Now          time.Time
	MinNotice    time.Duration // Минимальное время до начала записи
}

// GenerateSlots возвращает времена начала слотов, на которые мастер может принять запись.
// Слоты идут по сетке от начала рабочего интервала, последний слот заканчивается не позже его конца
func GenerateSlots(p SlotParams) []types.TimeString {
	if p.Interval <= 0 || p.Duration <= 0 {
		return nil
	}

	slots := make([]types.TimeString, 0)

	for cursor := p.Schedule.OpenTime; cursor.Before(p.Schedule.CloseTime); cursor = cursor.Add(p.Interval) {
		slotEnd := cursor.Add(p.Duration)
		if slotEnd.After(p.Schedule.CloseTime) {
			break
		}

		if TooSoon(p.Date, cursor, p.Now, p.MinNotice) {
			continue
		}

		if HasConflict(p.Appointments, cursor, slotEnd) {
			continue
		}

		slots = append(slots, types.NewTimeString(cursor))
	}

	return slots
}

// HasConflict проверяет пересечение [start, end) с блокирующими записями.
// Записи, которые только граничат с интервалом, пересечением не считаются
func HasConflict(appointments []*domain.Appointment, start, end time.Time) bool {
	for _, a := range appointments {
		if !a.IsBlocking() {
			continue
		}
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// TooSoon возвращает true, если запрошенная дата сегодня и слот начинается раньше now + minNotice
func TooSoon(date, start, now time.Time, minNotice time.Duration) bool {
	if !IsSameDay(date, now) {
		return false
	}
	return start.Before(now.Add(minNotice))
}

// OnGrid проверяет, что start совпадает с одним из шагов сетки рабочего интервала
func OnGrid(schedule domain.EffectiveSchedule, start time.Time, interval time.Duration) bool {
	if interval <= 0 || start.Before(schedule.OpenTime) {
		return false
	}
	return start.Sub(schedule.OpenTime)%interval == 0
}

// IsSameDay проверяет, что now приходится на календарную дату date (в часовом поясе date)
func IsSameDay(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.In(date.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
