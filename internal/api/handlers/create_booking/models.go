package create_booking

import (
	"github.com/m04kA/SMC-CoachingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CoachingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Date        string  `json:"date"` // "2025-03-10"
	Time        string  `json:"time"` // "10:00"
	SessionType string  `json:"sessionType"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) *createBooking.Request {
	return &createBooking.Request{
		Actor:       actor,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Date:        r.Date,
		Time:        r.Time,
		SessionType: r.SessionType,
		Notes:       r.Notes,
	}
}
