package memory

import (
	"context"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// AppointmentRepository записи в памяти
type AppointmentRepository struct {
	store *Store
}

// FindActiveConflict есть ли активная запись на дату и время
func (r *AppointmentRepository) FindActiveConflict(_ context.Context, date time.Time, t types.TimeString, excludeID *string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, a := range r.store.appts {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if a.IsActive() && sameDay(a.Date, date) && a.Time == t {
			return true, nil
		}
	}
	return false, nil
}

// Create сохраняет новую запись
func (r *AppointmentRepository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	switch {
	case strings.TrimSpace(appointment.FullName) == "":
		return nil, domain.NewValidationError("full name is required")
	case strings.TrimSpace(appointment.Email) == "":
		return nil, domain.NewValidationError("email is required")
	case appointment.Date.IsZero():
		return nil, domain.NewValidationError("date is required")
	case appointment.Time.IsZero():
		return nil, domain.NewValidationError("time is required")
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *appointment
	created.ID = id
	if created.Status == "" {
		created.Status = domain.StatusPending
	}
	created.CreatedAt = r.store.stamp()
	created.UpdatedAt = created.CreatedAt
	r.store.appts[id] = created
	return &created, nil
}

// Update применяет частичное обновление и обновляет updated_at
func (r *AppointmentRepository) Update(_ context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.appts[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	if update.Status != nil {
		a.Status = *update.Status
	}
	if update.Date != nil {
		a.Date = *update.Date
	}
	if update.Time != nil {
		a.Time = *update.Time
	}
	a.UpdatedAt = r.store.stamp()
	r.store.appts[id] = a
	return &a, nil
}

// GetByID возвращает запись по идентификатору
func (r *AppointmentRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.appts[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return &a, nil
}

// ListForClient возвращает записи клиента
func (r *AppointmentRepository) ListForClient(_ context.Context, clientID string) ([]*domain.Appointment, error) {
	return r.list(func(a *domain.Appointment) bool { return a.IsOwnedBy(clientID) }), nil
}

// ListAll возвращает все записи, опционально по статусу
func (r *AppointmentRepository) ListAll(_ context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return r.list(func(a *domain.Appointment) bool { return status == nil || a.Status == *status }), nil
}

func (r *AppointmentRepository) list(match func(*domain.Appointment) bool) []*domain.Appointment {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range r.store.appts {
		appt := a
		if match(&appt) {
			result = append(result, &appt)
		}
	}
	sortByDateTime(result, func(a *domain.Appointment) (time.Time, string) {
		return a.Date, a.Time.String()
	})
	return result
}
