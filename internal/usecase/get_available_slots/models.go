package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Пояснения к пустому списку слотов
const (
	MessageVendorInactive    = "Vendor is not accepting bookings"
	MessagePastDate          = "Cannot book appointments in the past"
	MessageWorkerUnavailable = "Selected worker does not provide this service"
	MessageNoWorkers         = "No workers available for this service"
	MessageNoSlots           = "No available slots for this date"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID    string    // ID пользователя (для логирования, не влияет на результат)
	VendorID  string    // ID салона
	ServiceID string    // ID услуги
	WorkerID  *string   // ID мастера (опционально)
	Date      time.Time // Дата (время суток игнорируется)
}

// Response модель ответа со списком доступных слотов.
// Пустой Slots с Message - штатный результат, а не ошибка
type Response struct {
	Date      time.Time // Дата в часовом поясе сервиса
	VendorID  string
	ServiceID string
	WorkerID  *string
	Slots     []Slot // Отсортированы по времени
	Message   string
}

// Slot время начала и мастера, свободные в это время
type Slot struct {
	Time             types.TimeString
	AvailableWorkers []domain.WorkerRef
}
