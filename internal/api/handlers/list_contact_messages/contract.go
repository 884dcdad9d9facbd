package list_contact_messages

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

type ContactService interface {
	List(ctx context.Context, actor domain.Actor, status *domain.ContactStatus) ([]*domain.ContactMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
