package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/internal/integrations/identity"
)

// TokenVerifier проверка bearer токена
type TokenVerifier interface {
	Verify(token string) (*identity.Identity, error)
}

// RoleRepository источник ролей пользователей
type RoleRepository interface {
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

// MetricsRecorder запись HTTP метрик
type MetricsRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
