package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

const (
	tableSlots        = "availability_slots"
	tableAppointments = "appointments"
	tableContacts     = "contact_messages"
	tableRoles        = "user_roles"

	returnRepresentation = "representation"
)

type slotRow struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	IsAvailable bool      `json:"is_available"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r slotRow) toDomain() (*domain.AvailabilitySlot, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("slot %s: date: %w", r.ID, err)
	}
	t, err := types.ParseStoredTimeString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("slot %s: time: %w", r.ID, err)
	}
	return &domain.AvailabilitySlot{
		ID:          r.ID,
		Date:        date,
		Time:        t,
		IsAvailable: r.IsAvailable,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}, nil
}

type slotInsert struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	IsAvailable bool    `json:"is_available"`
	CreatedBy   *string `json:"created_by"`
}

type appointmentRow struct {
	ID          string    `json:"id"`
	ClientID    *string   `json:"client_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	SessionType string    `json:"session_type"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r appointmentRow) toDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("appointment %s: date: %w", r.ID, err)
	}
	t, err := types.ParseStoredTimeString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("appointment %s: time: %w", r.ID, err)
	}
	return &domain.Appointment{
		ID:          r.ID,
		ClientID:    r.ClientID,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Date:        date,
		Time:        t,
		SessionType: r.SessionType,
		Status:      domain.AppointmentStatus(r.Status),
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

type appointmentInsert struct {
	ID          string  `json:"id"`
	ClientID    *string `json:"client_id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	SessionType string  `json:"session_type"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type contactRow struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r contactRow) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        r.ID,
		FullName:  r.FullName,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Status:    domain.ContactStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

type contactInsert struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Message  string  `json:"message"`
	Status   string  `json:"status"`
}

type roleRow struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func decode[T any](op string, data []byte) ([]T, error) {
	var rows []T
	if len(data) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s - unmarshal: %v", ErrDecode, op, err)
	}
	return rows, nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
