package appointments

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда у актора нет прав на запись
	ErrAccessDenied = fmt.Errorf("%w: access denied", domain.ErrForbidden)

	// ErrAdminOnly возвращается, когда операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("%w: admin access required", domain.ErrForbidden)

	// ErrUnauthenticated возвращается, когда операция требует авторизации
	ErrUnauthenticated = fmt.Errorf("%w: authentication required", domain.ErrUnauthorized)

	// ErrCannotConfirm возвращается при подтверждении записи не в статусе pending
	ErrCannotConfirm = fmt.Errorf("%w: only pending appointments can be confirmed", domain.ErrInvalidTransition)

	// ErrCannotCancel возвращается при отмене завершенной записи
	ErrCannotCancel = fmt.Errorf("%w: completed appointments cannot be cancelled", domain.ErrInvalidTransition)

	// ErrUnsupportedStatus возвращается, когда целевой статус нельзя установить вручную
	ErrUnsupportedStatus = fmt.Errorf("%w: status can only be changed to confirmed or cancelled", domain.ErrInvalidTransition)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: appointments: internal error", domain.ErrStorage)
)
