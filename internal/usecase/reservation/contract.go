package reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	LockSlot(ctx context.Context, date time.Time, t types.TimeString) error
	FindSlot(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error)
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	MarkUnavailable(ctx context.Context, id string) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindActiveConflict(ctx context.Context, date time.Time, t types.TimeString, excludeID *string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
