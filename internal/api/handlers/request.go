package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON разбирает тело запроса в v и проверяет теги validate
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	if err := validate.Struct(v); err != nil {
		return describeValidation(err)
	}

	return nil
}

// describeValidation превращает ошибки validator в короткий текст "field: tag"
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, ", "))
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, strings.TrimSpace(s))
}

// QueryString возвращает указатель на непустой query параметр
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}
