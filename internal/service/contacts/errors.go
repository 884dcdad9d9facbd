package contacts

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrAdminOnly возвращается, когда операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("%w: admin access required", domain.ErrForbidden)

	// ErrStatusBackwards возвращается при попытке вернуть сообщение в предыдущий статус
	ErrStatusBackwards = fmt.Errorf("%w: contact message status can only move forward", domain.ErrInvalidTransition)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: contacts: internal error", domain.ErrStorage)
)
