package create_slot

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/service/slots"
)

type SlotService interface {
	Create(ctx context.Context, actor domain.Actor, req slots.CreateRequest) (*domain.AvailabilitySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
