package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

// serviceIDsColumn список услуг мастера одной колонкой
const serviceIDsColumn = "COALESCE(array_agg(ws.service_id ORDER BY ws.service_id) FILTER (WHERE ws.service_id IS NOT NULL), '{}') AS service_ids"

// Repository репозиторий мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) selectWorkers() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"w.id",
		"w.vendor_id",
		"w.name",
		serviceIDsColumn,
	).
		From("workers w").
		LeftJoin("worker_services ws ON ws.worker_id = w.id").
		GroupBy("w.id", "w.vendor_id", "w.name")
}

// GetByID получает мастера по ID вместе со списком услуг
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWorkers().
		Where(squirrel.Eq{"w.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var worker domain.Worker
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&worker.ID,
		&worker.VendorID,
		&worker.Name,
		pq.Array(&worker.ServiceIDs),
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan worker: %v", ErrScanRow, err)
	}

	return &worker, nil
}

// GetByVendorAndService получает мастеров салона, выполняющих услугу.
// Порядок: по имени, затем по ID
func (r *Repository) GetByVendorAndService(ctx context.Context, vendorID, serviceID string) ([]*domain.Worker, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWorkers().
		Where(squirrel.Eq{"w.vendor_id": vendorID}).
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM worker_services x WHERE x.worker_id = w.id AND x.service_id = ?)", serviceID)).
		OrderBy("w.name ASC", "w.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorAndService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorAndService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	workers := make([]*domain.Worker, 0)
	for rows.Next() {
		var worker domain.Worker
		if err := rows.Scan(
			&worker.ID,
			&worker.VendorID,
			&worker.Name,
			pq.Array(&worker.ServiceIDs),
		); err != nil {
			return nil, fmt.Errorf("%w: GetByVendorAndService - scan worker: %v", ErrScanRow, err)
		}
		workers = append(workers, &worker)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVendorAndService - rows error: %v", ErrScanRow, err)
	}

	return workers, nil
}
