package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/service/appointments"
)

type AppointmentService interface {
	Cancel(ctx context.Context, actor domain.Actor, id string) (*appointments.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
