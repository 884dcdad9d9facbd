package supabase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// SlotRepository слоты расписания через PostgREST
type SlotRepository struct {
	client Client
}

func NewSlotRepository(client Client) *SlotRepository {
	return &SlotRepository{client: client}
}

// FindSlot канонический слот на дату и время (самый ранний по created_at)
func (r *SlotRepository) FindSlot(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error) {
	data, _, err := r.client.From(tableSlots).
		Select("*", "", false).
		Eq("date", date.Format(domain.DateFormat)).
		Eq("time", t.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Limit(1, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: FindSlot: %v", ErrRequest, err)
	}

	slots, err := r.toDomain("FindSlot", data)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrSlotNotFound
	}
	return slots[0], nil
}

// GetByID получает слот по ID
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSlotNotFound
	}

	data, _, err := r.client.From(tableSlots).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrRequest, err)
	}

	slots, err := r.toDomain("GetByID", data)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrSlotNotFound
	}
	return slots[0], nil
}

// Create создает слот
func (r *SlotRepository) Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	if slot.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrRequest, err)
		}
		slot.ID = id.String()
	}

	row := slotInsert{
		ID:          slot.ID,
		Date:        slot.Date.Format(domain.DateFormat),
		Time:        slot.Time.String(),
		IsAvailable: slot.IsAvailable,
		CreatedBy:   slot.CreatedBy,
	}

	data, _, err := r.client.From(tableSlots).
		Insert(row, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrRequest, err)
	}

	slots, err := r.toDomain("Create", data)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: Create - empty representation", ErrDecode)
	}
	return slots[0], nil
}

// List слоты по возрастанию даты и времени
func (r *SlotRepository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.AvailabilitySlot, error) {
	query := r.client.From(tableSlots).
		Select("*", "", false)

	if filter.Date != nil {
		query = query.Eq("date", filter.Date.Format(domain.DateFormat))
	}
	if filter.OnlyAvailable {
		query = query.Eq("is_available", "true")
	}

	data, _, err := query.
		Order("date", &postgrest.OrderOpts{Ascending: true}).
		Order("time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrRequest, err)
	}

	slots, err := r.toDomain("List", data)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Time.IsBefore(slots[j].Time)
	})
	return slots, nil
}

// MarkUnavailable помечает слот занятым
func (r *SlotRepository) MarkUnavailable(ctx context.Context, id string) error {
	return r.setAvailability("MarkUnavailable", id, false)
}

// MarkAvailable возвращает слот в расписание
func (r *SlotRepository) MarkAvailable(ctx context.Context, id string) error {
	return r.setAvailability("MarkAvailable", id, true)
}

func (r *SlotRepository) setAvailability(op, id string, available bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSlotNotFound
	}

	data, _, err := r.client.From(tableSlots).
		Update(map[string]interface{}{"is_available": available}, returnRepresentation, "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRequest, op, err)
	}

	rows, err := decode[slotRow](op, data)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Delete удаляет слот
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSlotNotFound
	}

	data, _, err := r.client.From(tableSlots).
		Delete(returnRepresentation, "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrRequest, err)
	}

	rows, err := decode[slotRow]("Delete", data)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// LockSlot PostgREST не даёт держать транзакцию между запросами,
// поэтому бронирование через этот драйвер не атомарно
func (r *SlotRepository) LockSlot(ctx context.Context, date time.Time, t types.TimeString) error {
	return nil
}

func (r *SlotRepository) toDomain(op string, data []byte) ([]*domain.AvailabilitySlot, error) {
	rows, err := decode[slotRow](op, data)
	if err != nil {
		return nil, err
	}

	slots := make([]*domain.AvailabilitySlot, 0, len(rows))
	for _, row := range rows {
		slot, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
