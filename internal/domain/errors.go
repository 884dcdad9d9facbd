package domain

import (
	"errors"
	"fmt"
)

// Общая таксономия ошибок. Пакеты оборачивают их через %w,
// HTTP слой сопоставляет через errors.Is
var (
	ErrValidation        = errors.New("validation error")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
	ErrStorage           = errors.New("storage error")
	ErrNotification      = errors.New("notification error")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
)

// ValidationError ошибка входных данных. Message отдаётся клиенту как есть
type ValidationError struct {
	Message string
}

// NewValidationError создаёт ошибку валидации с сообщением для клиента
func NewValidationError(format string, v ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, v...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет сопоставлять ValidationError с ErrValidation через errors.Is
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
