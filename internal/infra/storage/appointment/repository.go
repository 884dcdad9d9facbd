package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

const table = "appointments"

var columns = []string{
	"id",
	"client_id",
	"full_name",
	"email",
	"phone",
	"date",
	"time",
	"session_type",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на сессии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveConflict есть ли активная (pending/confirmed) запись на дату и время.
// excludeID исключает саму переносимую запись
func (r *Repository) FindActiveConflict(ctx context.Context, date time.Time, t types.TimeString, excludeID *string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{
			"date":   date.Format(domain.DateFormat),
			"time":   t,
			"status": statuses,
		})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: FindActiveConflict - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: FindActiveConflict - scan count: %w", ErrScanRow, err)
	}

	return count > 0, nil
}

// Create сохраняет новую запись. Обязательны имя, email, дата и время
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if err := validateForCreate(appointment); err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrBuildQuery, err)
		}
		appointment.ID = id.String()
	}
	if appointment.Status == "" {
		appointment.Status = domain.StatusPending
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_id",
			"full_name",
			"email",
			"phone",
			"date",
			"time",
			"session_type",
			"status",
			"notes",
		).
		Values(
			appointment.ID,
			appointment.ClientID,
			appointment.FullName,
			appointment.Email,
			appointment.Phone,
			appointment.Date.Format(domain.DateFormat),
			appointment.Time,
			appointment.SessionType,
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
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// Update меняет статус и/или дату со временем, обновляя updated_at
func (r *Repository) Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	if update.IsEmpty() {
		return nil, domain.NewValidationError("nothing to update")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", update.Date.Format(domain.DateFormat))
	}
	if update.Time != nil {
		updateBuilder = updateBuilder.Set("time", *update.Time)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до изменения статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// ListForClient записи клиента по возрастанию даты и времени
func (r *Repository) ListForClient(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	if _, err := uuid.Parse(clientID); err != nil {
		return []*domain.Appointment{}, nil
	}

	return r.list(ctx, "ListForClient", squirrel.Eq{"client_id": clientID})
}

// ListAll все записи, опционально с фильтром по статусу
func (r *Repository) ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if status == nil {
		return r.list(ctx, "ListAll", nil)
	}
	return r.list(ctx, "ListAll", squirrel.Eq{"status": *status})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date ASC", "time ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return appointments, nil
}

func validateForCreate(a *domain.Appointment) error {
	switch {
	case a.FullName == "":
		return domain.NewValidationError("full name is required")
	case a.Email == "":
		return domain.NewValidationError("email is required")
	case a.Date.IsZero():
		return domain.NewValidationError("date is required")
	case a.Time.IsZero():
		return domain.NewValidationError("time is required")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		clientID, phone      sql.NullString
		notes                sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&appointment.ID,
		&clientID,
		&appointment.FullName,
		&appointment.Email,
		&phone,
		&appointment.Date,
		&appointment.Time,
		&appointment.SessionType,
		&appointment.Status,
		&notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	appointment.ClientID = nullString(clientID)
	appointment.Phone = nullString(phone)
	appointment.Notes = nullString(notes)
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
