package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    string           // ID пользователя
	VendorID  string           // ID салона
	ServiceID string           // ID услуги
	WorkerID  string           // ID мастера
	Date      time.Time        // Дата записи (время суток игнорируется)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Комментарий (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string
	UserID    string
	VendorID  string
	ServiceID string
	WorkerID  string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
