package appointments

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
	ListForClient(ctx context.Context, clientID string) ([]*domain.Appointment, error)
	ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
}

// SlotRepository нужен только для освобождения слота при отмене
type SlotRepository interface {
	FindSlot(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error)
	MarkAvailable(ctx context.Context, id string) error
}

// Notifier отправляет письма после фиксации изменений
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, appointment *domain.Appointment) []string
	AppointmentCancelled(ctx context.Context, appointment *domain.Appointment) []string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик переходов статусов
type Metrics interface {
	RecordTransition(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
