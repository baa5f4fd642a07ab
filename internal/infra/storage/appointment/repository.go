package appointment

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
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

var appointmentColumns = []string{
	"id",
	"vendor_id",
	"worker_id",
	"service_id",
	"user_id",
	"start_time",
	"end_time",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"vendor_id",
			"worker_id",
			"service_id",
			"user_id",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			appointment.ID,
			appointment.VendorID,
			appointment.WorkerID,
			appointment.ServiceID,
			appointment.UserID,
			appointment.StartTime,
			appointment.EndTime,
			appointment.Status,
			appointment.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, execError("Create - execute insert", err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetByUserID получает записи пользователя, сначала новые.
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID string, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByVendorWithFilter получает записи салона с фильтрацией по мастеру, периоду и статусу.
// Без явного статуса и IncludeInactive отмененные и отклоненные записи исключаются
func (r *Repository) GetByVendorWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"vendor_id": filter.VendorID})

	if filter.WorkerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"worker_id": *filter.WorkerID})
	}

	// Записи, пересекающие период
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendorWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetBlockingForWorkers получает блокирующие записи (PENDING, CONFIRMED) мастеров салона,
// пересекающие интервал [from, to).
// Внутри транзакции строки блокируются (FOR UPDATE) для повторной проверки пересечений при записи
func (r *Repository) GetBlockingForWorkers(ctx context.Context, vendorID string, workerIDs []string, from, to time.Time) ([]*domain.Appointment, error) {
	if len(workerIDs) == 0 {
		return []*domain.Appointment{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		Where(squirrel.Eq{"worker_id": workerIDs}).
		Where(squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingForWorkers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, execError("GetBlockingForWorkers - execute query", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus меняет статус записи с from на to.
// Если запись не найдена или её статус уже не from, возвращает ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// Cancel отменяет запись с указанием причины.
// Отменить можно только запись в статусе PENDING или CONFIRMED
func (r *Repository) Cancel(ctx context.Context, id string, status domain.AppointmentStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&a.ID,
		&a.VendorID,
		&a.WorkerID,
		&a.ServiceID,
		&a.UserID,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.Notes,
		&a.CancellationReason,
		&a.CancelledAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// execError отделяет конфликт SERIALIZABLE транзакций от прочих ошибок выполнения
func execError(op string, err error) error {
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
