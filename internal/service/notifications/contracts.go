package notifications

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Sender транспорт писем
type Sender interface {
	Send(ctx context.Context, kind domain.NotificationKind, email domain.Email) domain.NotificationResult
}

// Metrics счётчик отправленных уведомлений
type Metrics interface {
	RecordNotification(kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
