package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/service/appointments"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.AppointmentStatus) (*appointments.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
