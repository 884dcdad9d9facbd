package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// ContactRepository сообщения формы обратной связи в памяти
type ContactRepository struct {
	store *Store
}

// Create сохраняет сообщение со статусом new
func (r *ContactRepository) Create(_ context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *msg
	created.ID = id
	if created.Status == "" {
		created.Status = domain.ContactStatusNew
	}
	created.CreatedAt = r.store.stamp()
	r.store.messages[id] = created
	return &created, nil
}

// GetByID возвращает сообщение по идентификатору
func (r *ContactRepository) GetByID(_ context.Context, id string) (*domain.ContactMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	msg, ok := r.store.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &msg, nil
}

// List возвращает сообщения от новых к старым
func (r *ContactRepository) List(_ context.Context, status *domain.ContactStatus) ([]*domain.ContactMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.ContactMessage, 0)
	for _, m := range r.store.messages {
		if status != nil && m.Status != *status {
			continue
		}
		msg := m
		result = append(result, &msg)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateStatus меняет статус сообщения
func (r *ContactRepository) UpdateStatus(_ context.Context, id string, status domain.ContactStatus) (*domain.ContactMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	msg, ok := r.store.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	msg.Status = status
	r.store.messages[id] = msg
	return &msg, nil
}

// RoleRepository роли пользователей в памяти
type RoleRepository struct {
	store *Store
}

// GetRole возвращает роль пользователя, по умолчанию user
func (r *RoleRepository) GetRole(_ context.Context, userID string) (domain.Role, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if role, ok := r.store.roles[userID]; ok {
		return role, nil
	}
	return domain.RoleUser, nil
}
