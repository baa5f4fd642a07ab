package get_available_slots

import "errors"

var (
	// ErrVendorNotFound возвращается, когда салон не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, неактивна или принадлежит другому салону
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
