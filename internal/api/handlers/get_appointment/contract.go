package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type AppointmentService interface {
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
