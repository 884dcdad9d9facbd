package role

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
)

// Repository чтение ролей из user_roles
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ролей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRole роль пользователя. Пользователь без записи в user_roles считается обычным
func (r *Repository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.RoleUser, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetRole - build select query: %v", ErrBuildQuery, err)
	}

	var role domain.Role
	err = executor.QueryRowContext(ctx, query, args...).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoleUser, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetRole - scan role: %w", ErrScanRow, err)
	}

	return role, nil
}
