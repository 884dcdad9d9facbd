package memory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// SlotRepository слоты в памяти
type SlotRepository struct {
	store *Store
}

// FindSlot возвращает самый ранний слот на дату и время
func (r *SlotRepository) FindSlot(_ context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var found *domain.AvailabilitySlot
	for _, slot := range r.store.slots {
		if !sameDay(slot.Date, date) || slot.Time != t {
			continue
		}
		if found == nil || slot.CreatedAt.Before(found.CreatedAt) {
			s := slot
			found = &s
		}
	}
	if found == nil {
		return nil, ErrSlotNotFound
	}
	return found, nil
}

// GetByID возвращает слот по идентификатору
func (r *SlotRepository) GetByID(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return &slot, nil
}

// Create сохраняет новый слот
func (r *SlotRepository) Create(_ context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *slot
	created.ID = id
	created.CreatedAt = r.store.stamp()
	r.store.slots[id] = created
	return &created, nil
}

// List возвращает слоты по фильтру, отсортированные по дате и времени
func (r *SlotRepository) List(_ context.Context, filter domain.SlotFilter) ([]*domain.AvailabilitySlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.AvailabilitySlot, 0)
	for _, slot := range r.store.slots {
		if filter.Date != nil && !sameDay(slot.Date, *filter.Date) {
			continue
		}
		if filter.OnlyAvailable && !slot.IsAvailable {
			continue
		}
		s := slot
		result = append(result, &s)
	}
	sortByDateTime(result, func(s *domain.AvailabilitySlot) (time.Time, string) {
		return s.Date, s.Time.String()
	})
	return result, nil
}

// MarkUnavailable помечает слот занятым
func (r *SlotRepository) MarkUnavailable(_ context.Context, id string) error {
	return r.setAvailability(id, false)
}

// MarkAvailable освобождает слот
func (r *SlotRepository) MarkAvailable(_ context.Context, id string) error {
	return r.setAvailability(id, true)
}

func (r *SlotRepository) setAvailability(id string, available bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[id]
	if !ok {
		return ErrSlotNotFound
	}
	slot.IsAvailable = available
	r.store.slots[id] = slot
	return nil
}

// Delete удаляет слот
func (r *SlotRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slots[id]; !ok {
		return ErrSlotNotFound
	}
	delete(r.store.slots, id)
	return nil
}

// LockSlot ничего не делает: операции хранилища в памяти атомарны по отдельности
func (r *SlotRepository) LockSlot(_ context.Context, _ time.Time, _ types.TimeString) error {
	return nil
}
