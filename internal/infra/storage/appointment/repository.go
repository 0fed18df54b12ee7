package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	"github.com/bizqueue/BQ-SchedulingService/pkg/dbmetrics"
	"github.com/bizqueue/BQ-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Колонки таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"business_id",
	"service_id",
	"start_at",
	"status",
	"customer_name",
	"customer_phone",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование одним атомарным INSERT.
//
// Корректность при одновременных запросах обеспечивает частичный уникальный
// индекс на (business_id, start_at) для status = 'scheduled': из двух
// конкурентных вставок на один слот ровно одна завершается успешно, вторая
// получает ErrSlotTaken. Предварительная проверка доступности слота здесь
// намеренно отсутствует.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"business_id",
			"service_id",
			"start_at",
			"status",
			"customer_name",
			"customer_phone",
			"notes",
		).
		Values(
			appt.BusinessID,
			appt.ServiceID,
			appt.StartAt,
			appt.Status,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetScheduledInRange получает активные бронирования бизнеса в интервале [From, To).
// Используется калькулятором доступности: верхняя граница исключается.
func (r *Repository) GetScheduledInRange(ctx context.Context, filter domain.AppointmentsRangeFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
		Where(squirrel.GtOrEq{"start_at": filter.From}).
		Where(squirrel.Lt{"start_at": filter.To}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListWithService получает все активные бронирования бизнеса, обогащённые данными
// услуги на момент чтения (LEFT JOIN: удаленная услуга не ломает выборку,
// её поля приходят NULL). Сортировка по start_at по возрастанию.
func (r *Repository) ListWithService(ctx context.Context, businessID int64) ([]*domain.AppointmentWithService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, 0, len(appointmentColumns)+3)
	for _, column := range appointmentColumns {
		columns = append(columns, "a."+column)
	}
	columns = append(columns, "s.name", "s.duration_min", "s.price")

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments a").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.business_id": businessID}).
		Where(squirrel.Eq{"a.status": domain.StatusScheduled}).
		OrderBy("a.start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentWithService, 0)

	for rows.Next() {
		var appt domain.AppointmentWithService
		var createdAt, updatedAt sql.NullTime
		var serviceName sql.NullString
		var serviceDuration sql.NullInt64
		var servicePrice sql.NullFloat64

		err := rows.Scan(
			&appt.ID,
			&appt.BusinessID,
			&appt.ServiceID,
			&appt.StartAt,
			&appt.Status,
			&appt.CustomerName,
			&appt.CustomerPhone,
			&appt.Notes,
			&appt.CancelledAt,
			&createdAt,
			&updatedAt,
			&serviceName,
			&serviceDuration,
			&servicePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithService - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		if serviceName.Valid {
			appt.ServiceName = &serviceName.String
		}
		if serviceDuration.Valid {
			duration := int(serviceDuration.Int64)
			appt.ServiceDuration = &duration
		}
		if servicePrice.Valid {
			appt.ServicePrice = &servicePrice.Float64
		}

		result = append(result, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithService - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Cancel отменяет бронирование бизнеса (мягкое удаление: status -> cancelled).
// Чужое или несуществующее бронирование даёт ErrAppointmentNotFound, не раскрывая,
// существует ли запись у другого бизнеса.
func (r *Repository) Cancel(ctx context.Context, id int64, businessID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
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
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс бронирований
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.BusinessID,
			&appt.ServiceID,
			&appt.StartAt,
			&appt.Status,
			&appt.CustomerName,
			&appt.CustomerPhone,
			&appt.Notes,
			&appt.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
