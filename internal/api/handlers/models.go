package handlers

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// AppointmentResponse запись в HTTP ответе
type AppointmentResponse struct {
	ID          string  `json:"id"`
	ClientID    *string `json:"clientId,omitempty"`
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	SessionType string  `json:"sessionType"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// AppointmentEnvelope ответ с одной записью
type AppointmentEnvelope struct {
	OK          bool                 `json:"ok"`
	Appointment *AppointmentResponse `json:"appointment"`
	Warnings    []string             `json:"warnings,omitempty"`
}

// AppointmentListEnvelope ответ со списком записей
type AppointmentListEnvelope struct {
	OK           bool                   `json:"ok"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

// SlotResponse слот в HTTP ответе
type SlotResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	IsAvailable bool    `json:"isAvailable"`
	CreatedBy   *string `json:"createdBy,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ContactMessageResponse сообщение в HTTP ответе
type ContactMessageResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Date:        a.DateString(),
		Time:        a.Time.String(),
		SessionType: a.SessionType,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func FromAppointmentList(list []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromAppointment(a))
	}
	return result
}

func FromSlot(s *domain.AvailabilitySlot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		Date:        s.DateString(),
		Time:        s.Time.String(),
		IsAvailable: s.IsAvailable,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func FromSlotList(list []*domain.AvailabilitySlot) []*SlotResponse {
	result := make([]*SlotResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromSlot(s))
	}
	return result
}

func FromContactMessage(m *domain.ContactMessage) *ContactMessageResponse {
	return &ContactMessageResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func FromContactMessageList(list []*domain.ContactMessage) []*ContactMessageResponse {
	result := make([]*ContactMessageResponse, 0, len(list))
	for _, m := range list {
		result = append(result, FromContactMessage(m))
	}
	return result
}

// SlotListEnvelope ответ со списком слотов
type SlotListEnvelope struct {
	OK    bool            `json:"ok"`
	Slots []*SlotResponse `json:"slots"`
}

// SlotEnvelope ответ с одним слотом
type SlotEnvelope struct {
	OK   bool          `json:"ok"`
	Slot *SlotResponse `json:"slot"`
}

// ContactMessageEnvelope ответ с одним сообщением
type ContactMessageEnvelope struct {
	OK       bool                    `json:"ok"`
	Message  *ContactMessageResponse `json:"message"`
	Warnings []string                `json:"warnings,omitempty"`
}

// ContactMessageListEnvelope ответ со списком сообщений
type ContactMessageListEnvelope struct {
	OK       bool                      `json:"ok"`
	Messages []*ContactMessageResponse `json:"messages"`
}

// OKResponse пустой успешный ответ
type OKResponse struct {
	OK bool `json:"ok"`
}
