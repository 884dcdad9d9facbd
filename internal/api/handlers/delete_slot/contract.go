package delete_slot

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type SlotService interface {
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
