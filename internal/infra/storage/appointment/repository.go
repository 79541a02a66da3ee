package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NSS-ScheduleService/internal/domain"
	"github.com/m04kA/NSS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/NSS-ScheduleService/pkg/sqlbuilder"
)

const appointmentsTable = "appointments"

var appointmentColumns = []string{
	"id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"client_name",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
// Дата хранится строковым ключом YYYY-MM-DD: сравнение и сортировка по нему
// лексикографические, что одинаково работает в SQLite и PostgreSQL
type Repository struct {
	db DBExecutor
	qb *sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, qb *sqlbuilder.Builder) *Repository {
	return &Repository{db: db, qb: qb}
}

// Create сохраняет новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её —
// путь создания записи всегда выполняет проверку доступности и вставку в одной
// сериализуемой транзакции, чтобы два конкурентных создания не прошли проверку
// по одному и тому же устаревшему состоянию дня
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Insert(appointmentsTable).
		Columns(
			"id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"client_name",
			"notes",
		).
		Values(
			appt.ID,
			domain.DayKey(appt.Date),
			appt.StartTime,
			appt.DurationMinutes,
			appt.ClientName,
			appt.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(appointmentColumns...).
		From(appointmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByDate получает все записи на конкретную дату, отсортированные по времени начала
// Внутри транзакции добавляет FOR UPDATE (только для PostgreSQL) — блокировка
// записей дня на время проверки доступности при создании
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.qb.Select(appointmentColumns...).
		From(appointmentsTable).
		Where(squirrel.Eq{"appointment_date": domain.DayKey(date)}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && r.qb.SupportsRowLocking() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByDateRange получает записи за период [from, to] включительно,
// отсортированные по дате и времени начала
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(appointmentColumns...).
		From(appointmentsTable).
		Where(squirrel.GtOrEq{"appointment_date": domain.DayKey(from)}).
		Where(squirrel.LtOrEq{"appointment_date": domain.DayKey(to)}).
		OrderBy("appointment_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Delete удаляет запись по ID (физическое удаление — история не хранится)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Delete(appointmentsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner объединяет *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointmentRow сканирует одну запись
func scanAppointmentRow(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var dateKey string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&dateKey,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.ClientName,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid appointment_date %q: %v", dateKey, err)
	}

	appt.Date = date
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
