package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// ContactRepository сообщения обратной связи через PostgREST
type ContactRepository struct {
	client Client
}

func NewContactRepository(client Client) *ContactRepository {
	return &ContactRepository{client: client}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if msg.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrRequest, err)
		}
		msg.ID = id.String()
	}
	if msg.Status == "" {
		msg.Status = domain.ContactStatusNew
	}

	row := contactInsert{
		ID:       msg.ID,
		FullName: msg.FullName,
		Email:    msg.Email,
		Phone:    msg.Phone,
		Message:  msg.Message,
		Status:   string(msg.Status),
	}

	data, _, err := r.client.From(tableContacts).
		Insert(row, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrRequest, err)
	}

	rows, err := decode[contactRow]("Create", data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: Create - empty representation", ErrDecode)
	}
	return rows[0].toDomain(), nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMessageNotFound
	}

	data, _, err := r.client.From(tableContacts).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrRequest, err)
	}

	rows, err := decode[contactRow]("GetByID", data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMessageNotFound
	}
	return rows[0].toDomain(), nil
}

// List сообщения от новых к старым
func (r *ContactRepository) List(ctx context.Context, status *domain.ContactStatus) ([]*domain.ContactMessage, error) {
	query := r.client.From(tableContacts).
		Select("*", "", false)
	if status != nil {
		query = query.Eq("status", string(*status))
	}

	data, _, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrRequest, err)
	}

	rows, err := decode[contactRow]("List", data)
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.ContactMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.ContactMessage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrMessageNotFound
	}

	data, _, err := r.client.From(tableContacts).
		Update(map[string]interface{}{"status": string(status)}, returnRepresentation, "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrRequest, err)
	}

	rows, err := decode[contactRow]("UpdateStatus", data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMessageNotFound
	}
	return rows[0].toDomain(), nil
}
