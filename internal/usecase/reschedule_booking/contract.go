package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error)
}

// SlotReserver занимает слот внутри транзакции
type SlotReserver interface {
	Reserve(ctx context.Context, date time.Time, t types.TimeString, ownerID, excludeID *string) error
}

// Notifier отправляет письма после фиксации транзакции
type Notifier interface {
	AppointmentRescheduled(ctx context.Context, appointment, previous *domain.Appointment) []string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
