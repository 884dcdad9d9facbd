package update_contact_status

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type ContactService interface {
	UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.ContactStatus) (*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
