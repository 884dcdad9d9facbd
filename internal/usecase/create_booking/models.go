package create_booking

import (
	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Request модель запроса на создание записи.
// Дата и время приходят строками и проверяются в usecase
type Request struct {
	Actor       domain.Actor // Гость или авторизованный клиент
	FullName    string
	Email       string
	Phone       *string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	SessionType string // Пустая строка заменяется на consultation
	Notes       *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	Warnings    []string // Ошибки отправки писем, запись при этом создана
}
