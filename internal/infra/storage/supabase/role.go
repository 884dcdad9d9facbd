package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// RoleRepository чтение user_roles через PostgREST
type RoleRepository struct {
	client Client
}

func NewRoleRepository(client Client) *RoleRepository {
	return &RoleRepository{client: client}
}

// GetRole роль пользователя, по умолчанию обычный пользователь
func (r *RoleRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.RoleUser, nil
	}

	data, _, err := r.client.From(tableRoles).
		Select("user_id,role", "", false).
		Eq("user_id", userID).
		Limit(1, "").
		Execute()
	if err != nil {
		return "", fmt.Errorf("%w: GetRole: %v", ErrRequest, err)
	}

	rows, err := decode[roleRow]("GetRole", data)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return domain.RoleUser, nil
	}
	return domain.Role(rows[0].Role), nil
}
