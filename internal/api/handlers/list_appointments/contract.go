package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type AppointmentService interface {
	ListAll(ctx context.Context, actor domain.Actor, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
