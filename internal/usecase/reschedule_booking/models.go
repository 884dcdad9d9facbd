package reschedule_booking

import "github.com/m04kA/SMC-CoachingService/internal/domain"

// Request модель запроса на перенос записи
type Request struct {
	Actor         domain.Actor
	AppointmentID string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

// Response модель ответа с перенесенной записью
type Response struct {
	Appointment *domain.Appointment
	Warnings    []string
}
