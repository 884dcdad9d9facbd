package slots

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrAdminOnly возвращается, когда операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("%w: admin access required", domain.ErrForbidden)

	// ErrSlotExists возвращается, когда слот на дату и время уже есть
	ErrSlotExists = fmt.Errorf("%w: slot already exists", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: slots: internal error", domain.ErrStorage)
)
