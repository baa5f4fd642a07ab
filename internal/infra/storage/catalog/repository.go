// Package catalog репозиторий услуг салонов
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// Repository репозиторий услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу по ID (включая неактивные)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"vendor_id",
		"name",
		"duration_minutes",
		"price",
		"is_active",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.VendorID,
		&service.Name,
		&service.DurationMinutes,
		&service.Price,
		&service.IsActive,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}
