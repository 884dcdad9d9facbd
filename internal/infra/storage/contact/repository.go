package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
)

const table = "contact_messages"

var columns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"message",
	"status",
	"created_at",
}

// Repository репозиторий сообщений обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сообщение со статусом new
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if msg.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrBuildQuery, err)
		}
		msg.ID = id.String()
	}
	if msg.Status == "" {
		msg.Status = domain.ContactStatusNew
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "full_name", "email", "phone", "message", "status").
		Values(msg.ID, msg.FullName, msg.Email, msg.Phone, msg.Message, msg.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return msg, nil
}

// GetByID получает сообщение по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMessageNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	msg, err := scanMessage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan message: %w", ErrScanRow, err)
	}

	return msg, nil
}

// List сообщения от новых к старым, опционально с фильтром по статусу
func (r *Repository) List(ctx context.Context, status *domain.ContactStatus) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
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

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return messages, nil
}

// UpdateStatus меняет статус сообщения и возвращает обновлённую строку
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMessageNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	msg, err := scanMessage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return msg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMessage(row rowScanner) (*domain.ContactMessage, error) {
	var (
		msg       domain.ContactMessage
		phone     sql.NullString
		createdAt sql.NullTime
	)

	if err := row.Scan(
		&msg.ID,
		&msg.FullName,
		&msg.Email,
		&phone,
		&msg.Message,
		&msg.Status,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if phone.Valid {
		msg.Phone = &phone.String
	}
	msg.CreatedAt = createdAt.Time

	return &msg, nil
}
