package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrAdminOnly возвращается, когда операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("%w: admin access required", domain.ErrForbidden)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: generate slots: internal error", domain.ErrStorage)
)
