package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда исключения на дату нет
	ErrOverrideNotFound = errors.New("schedule.repository: override not found")

	// ErrAvailabilityNotFound возвращается, когда для дня недели нет шаблона
	ErrAvailabilityNotFound = errors.New("schedule.repository: weekly availability not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
