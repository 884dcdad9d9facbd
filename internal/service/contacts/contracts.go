package contacts

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// ContactRepository интерфейс репозитория сообщений
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, status *domain.ContactStatus) ([]*domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.ContactMessage, error)
}

// Notifier оповещает владельца о новом сообщении
type Notifier interface {
	ContactReceived(ctx context.Context, msg *domain.ContactMessage) []string
}

// Metrics счётчик сообщений
type Metrics interface {
	RecordContactMessage()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
