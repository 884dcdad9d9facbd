package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

const table = "availability_slots"

var columns = []string{
	"id",
	"date",
	"time",
	"is_available",
	"created_by",
	"created_at",
}

// Repository репозиторий слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindSlot возвращает канонический слот на дату и время (самый ранний по created_at).
// Внутри транзакции строка блокируется FOR UPDATE
func (r *Repository) FindSlot(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat), "time": t}).
		OrderBy("created_at ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindSlot - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindSlot - scan slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSlotNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// Create создает слот. ID генерируется, если не задан
func (r *Repository) Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if slot.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrBuildQuery, err)
		}
		slot.ID = id.String()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "date", "time", "is_available", "created_by").
		Values(slot.ID, slot.Date.Format(domain.DateFormat), slot.Time, slot.IsAvailable, slot.CreatedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return slot, nil
}

// List возвращает слоты, отсортированные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date ASC", "time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// MarkUnavailable помечает слот занятым
func (r *Repository) MarkUnavailable(ctx context.Context, id string) error {
	return r.setAvailability(ctx, "MarkUnavailable", id, false)
}

// MarkAvailable возвращает слот в расписание
func (r *Repository) MarkAvailable(ctx context.Context, id string) error {
	return r.setAvailability(ctx, "MarkAvailable", id, true)
}

func (r *Repository) setAvailability(ctx context.Context, op, id string, available bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSlotNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_available", available).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	return r.execAffectingOne(ctx, executor, op, query, args)
}

// Delete удаляет слот
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSlotNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// LockSlot берёт транзакционную advisory блокировку на пару (дата, время).
// Блокировка снимается при commit/rollback
func (r *Repository) LockSlot(ctx context.Context, date time.Time, t types.TimeString) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNoTransaction
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column("pg_advisory_xact_lock(hashtext(?))", LockKey(date, t)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockSlot - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockSlot - acquire lock: %w", ErrExecQuery, err)
	}

	return nil
}

// LockKey ключ advisory блокировки для пары (дата, время)
func LockKey(date time.Time, t types.TimeString) string {
	return "slot:" + date.Format(domain.DateFormat) + "|" + t.String()
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.AvailabilitySlot, error) {
	var (
		slot      domain.AvailabilitySlot
		createdBy sql.NullString
		createdAt sql.NullTime
	)

	if err := row.Scan(
		&slot.ID,
		&slot.Date,
		&slot.Time,
		&slot.IsAvailable,
		&createdBy,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if createdBy.Valid {
		slot.CreatedBy = &createdBy.String
	}
	slot.CreatedAt = createdAt.Time

	return &slot, nil
}
