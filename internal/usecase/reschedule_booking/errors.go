package reschedule_booking

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrAccessDenied возвращается, когда актор не владелец записи и не администратор
	ErrAccessDenied = fmt.Errorf("%w: reschedule_booking: access denied", domain.ErrForbidden)

	// ErrNotReschedulable возвращается для отмененной или завершенной записи
	ErrNotReschedulable = fmt.Errorf("%w: only pending or confirmed appointments can be rescheduled", domain.ErrInvalidTransition)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: reschedule_booking: internal error", domain.ErrStorage)
)
