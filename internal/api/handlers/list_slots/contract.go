package list_slots

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type SlotService interface {
	List(ctx context.Context, actor domain.Actor, date string, onlyAvailable bool) ([]*domain.AvailabilitySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
