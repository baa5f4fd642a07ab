// Package schedule репозиторий недельных шаблонов и исключений расписания мастеров
package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var availabilityColumns = []string{
	"worker_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"updated_at",
}

var overrideColumns = []string{
	"worker_id",
	"date",
	"start_time",
	"end_time",
	"is_day_off",
	"notes",
	"updated_at",
}

// Repository репозиторий расписаний мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyAvailability получает строку недельного шаблона мастера на день недели (0 = воскресенье)
func (r *Repository) GetWeeklyAvailability(ctx context.Context, workerID string, dayOfWeek int) (*domain.WorkerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("worker_availability").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	availability, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - scan availability: %v", ErrScanRow, err)
	}

	return availability, nil
}

// ListWeeklyAvailability получает весь недельный шаблон мастера
func (r *Repository) ListWeeklyAvailability(ctx context.Context, workerID string) ([]*domain.WorkerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("worker_availability").
		Where(squirrel.Eq{"worker_id": workerID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklyAvailability - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklyAvailability - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkerAvailability, 0)
	for rows.Next() {
		availability, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWeeklyAvailability - scan availability: %v", ErrScanRow, err)
		}
		result = append(result, availability)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWeeklyAvailability - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertAvailability создает или заменяет строку недельного шаблона
func (r *Repository) UpsertAvailability(ctx context.Context, availability *domain.WorkerAvailability) (*domain.WorkerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("worker_availability").
		Columns("worker_id", "day_of_week", "start_time", "end_time", "is_available").
		Values(
			availability.WorkerID,
			availability.DayOfWeek,
			availability.StartTime,
			availability.EndTime,
			availability.IsAvailable,
		).
		Suffix(`ON CONFLICT (worker_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&availability.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertAvailability - execute upsert: %v", ErrExecQuery, err)
	}

	return availability, nil
}

// GetOverride получает исключение мастера на дату
func (r *Repository) GetOverride(ctx context.Context, workerID string, date time.Time) (*domain.WorkerScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("worker_schedule_overrides").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// ListOverrides получает исключения мастера за период [from, to] включительно
func (r *Repository) ListOverrides(ctx context.Context, workerID string, from, to time.Time) ([]*domain.WorkerScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("worker_schedule_overrides").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkerScheduleOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOverrides - scan override: %v", ErrScanRow, err)
		}
		result = append(result, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverrides - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertOverride создает или заменяет исключение на дату
func (r *Repository) UpsertOverride(ctx context.Context, override *domain.WorkerScheduleOverride) (*domain.WorkerScheduleOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("worker_schedule_overrides").
		Columns("worker_id", "date", "start_time", "end_time", "is_day_off", "notes").
		Values(
			override.WorkerID,
			override.Date.Format(domain.DateFormat),
			override.StartTime,
			override.EndTime,
			override.IsDayOff,
			override.Notes,
		).
		Suffix(`ON CONFLICT (worker_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_day_off = EXCLUDED.is_day_off,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&override.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	return override, nil
}

// DeleteOverride удаляет исключение на дату
func (r *Repository) DeleteOverride(ctx context.Context, workerID string, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("worker_schedule_overrides").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAvailability(row scanner) (*domain.WorkerAvailability, error) {
	var a domain.WorkerAvailability
	var startTime, endTime sql.NullString
	var updatedAt sql.NullTime

	if err := row.Scan(
		&a.WorkerID,
		&a.DayOfWeek,
		&startTime,
		&endTime,
		&a.IsAvailable,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	a.StartTime = startTime.String
	a.EndTime = endTime.String
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanOverride(row scanner) (*domain.WorkerScheduleOverride, error) {
	var o domain.WorkerScheduleOverride
	var updatedAt sql.NullTime

	if err := row.Scan(
		&o.WorkerID,
		&o.Date,
		&o.StartTime,
		&o.EndTime,
		&o.IsDayOff,
		&o.Notes,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
