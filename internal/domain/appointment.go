package domain

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// AppointmentStatus статус записи на сессию
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment запись клиента на коучинговую сессию
type Appointment struct {
	ID          string
	ClientID    *string // nil для гостевой записи
	FullName    string
	Email       string
	Phone       *string
	Date        time.Time
	Time        types.TimeString
	SessionType string
	Status      AppointmentStatus
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive занимает ли запись свой слот (pending или confirmed)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeConfirmed подтвердить можно только ожидающую запись
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCancelled отменить можно только активную запись
func (a *Appointment) CanBeCancelled() bool {
	return a.IsActive()
}

// CanBeRescheduled перенести можно только активную запись
func (a *Appointment) CanBeRescheduled() bool {
	return a.IsActive()
}

// IsOwnedBy принадлежит ли запись пользователю
func (a *Appointment) IsOwnedBy(userID string) bool {
	return a.ClientID != nil && userID != "" && *a.ClientID == userID
}

// DateString дата записи в формате YYYY-MM-DD
func (a *Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}

// AppointmentUpdate частичное обновление записи. nil поля не меняются
type AppointmentUpdate struct {
	Status *AppointmentStatus
	Date   *time.Time
	Time   *types.TimeString
}

// IsEmpty нет ни одного изменяемого поля
func (u AppointmentUpdate) IsEmpty() bool {
	return u.Status == nil && u.Date == nil && u.Time == nil
}
