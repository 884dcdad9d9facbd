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

// AppointmentRepository записи на сессии через PostgREST
type AppointmentRepository struct {
	client Client
}

func NewAppointmentRepository(client Client) *AppointmentRepository {
	return &AppointmentRepository{client: client}
}

// FindActiveConflict есть ли pending/confirmed запись на дату и время
func (r *AppointmentRepository) FindActiveConflict(ctx context.Context, date time.Time, t types.TimeString, excludeID *string) (bool, error) {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}

	query := r.client.From(tableAppointments).
		Select("id", "", false).
		Eq("date", date.Format(domain.DateFormat)).
		Eq("time", t.String()).
		In("status", statuses)
	if excludeID != nil {
		query = query.Neq("id", *excludeID)
	}

	data, _, err := query.Limit(1, "").Execute()
	if err != nil {
		return false, fmt.Errorf("%w: FindActiveConflict: %v", ErrRequest, err)
	}

	rows, err := decode[appointmentRow]("FindActiveConflict", data)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Create сохраняет новую запись. Обязательны имя, email, дата и время
func (r *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	switch {
	case appointment.FullName == "":
		return nil, domain.NewValidationError("full name is required")
	case appointment.Email == "":
		return nil, domain.NewValidationError("email is required")
	case appointment.Date.IsZero():
		return nil, domain.NewValidationError("date is required")
	case appointment.Time.IsZero():
		return nil, domain.NewValidationError("time is required")
	}

	if appointment.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate id: %v", ErrRequest, err)
		}
		appointment.ID = id.String()
	}
	if appointment.Status == "" {
		appointment.Status = domain.StatusPending
	}

	now := nowString()
	row := appointmentInsert{
		ID:          appointment.ID,
		ClientID:    appointment.ClientID,
		FullName:    appointment.FullName,
		Email:       appointment.Email,
		Phone:       appointment.Phone,
		Date:        appointment.DateString(),
		Time:        appointment.Time.String(),
		SessionType: appointment.SessionType,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data, _, err := r.client.From(tableAppointments).
		Insert(row, false, "", returnRepresentation, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrRequest, err)
	}

	return r.single("Create", data, nil)
}

// Update меняет статус и/или дату со временем, обновляя updated_at
func (r *AppointmentRepository) Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	if update.IsEmpty() {
		return nil, domain.NewValidationError("nothing to update")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	values := map[string]interface{}{"updated_at": nowString()}
	if update.Status != nil {
		values["status"] = string(*update.Status)
	}
	if update.Date != nil {
		values["date"] = update.Date.Format(domain.DateFormat)
	}
	if update.Time != nil {
		values["time"] = update.Time.String()
	}

	data, _, err := r.client.From(tableAppointments).
		Update(values, returnRepresentation, "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: Update: %v", ErrRequest, err)
	}

	return r.single("Update", data, ErrAppointmentNotFound)
}

// GetByID получает запись по ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	data, _, err := r.client.From(tableAppointments).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrRequest, err)
	}

	return r.single("GetByID", data, ErrAppointmentNotFound)
}

// ListForClient записи клиента по возрастанию даты и времени
func (r *AppointmentRepository) ListForClient(ctx context.Context, clientID string) ([]*domain.Appointment, error) {
	if _, err := uuid.Parse(clientID); err != nil {
		return []*domain.Appointment{}, nil
	}

	query := r.client.From(tableAppointments).
		Select("*", "", false).
		Eq("client_id", clientID)

	return r.list("ListForClient", query)
}

// ListAll все записи, опционально с фильтром по статусу
func (r *AppointmentRepository) ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	query := r.client.From(tableAppointments).
		Select("*", "", false)
	if status != nil {
		query = query.Eq("status", string(*status))
	}

	return r.list("ListAll", query)
}

func (r *AppointmentRepository) list(op string, query *postgrest.FilterBuilder) ([]*domain.Appointment, error) {
	data, _, err := query.
		Order("date", &postgrest.OrderOpts{Ascending: true}).
		Order("time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRequest, op, err)
	}

	appointments, err := r.toDomain(op, data)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		if !appointments[i].Date.Equal(appointments[j].Date) {
			return appointments[i].Date.Before(appointments[j].Date)
		}
		return appointments[i].Time.IsBefore(appointments[j].Time)
	})
	return appointments, nil
}

func (r *AppointmentRepository) single(op string, data []byte, notFound error) (*domain.Appointment, error) {
	appointments, err := r.toDomain(op, data)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		if notFound != nil {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: %s - empty representation", ErrDecode, op)
	}
	return appointments[0], nil
}

func (r *AppointmentRepository) toDomain(op string, data []byte) ([]*domain.Appointment, error) {
	rows, err := decode[appointmentRow](op, data)
	if err != nil {
		return nil, err
	}

	appointments := make([]*domain.Appointment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
