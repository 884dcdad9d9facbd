package supabase

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: supabase.repository: slot not found", domain.ErrNotFound)

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: supabase.repository: appointment not found", domain.ErrNotFound)

	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = fmt.Errorf("%w: supabase.repository: message not found", domain.ErrNotFound)

	// ErrRequest возвращается при ошибке запроса к PostgREST
	ErrRequest = fmt.Errorf("%w: supabase.repository: request failed", domain.ErrStorage)

	// ErrDecode возвращается при ошибке разбора ответа PostgREST
	ErrDecode = fmt.Errorf("%w: supabase.repository: failed to decode response", domain.ErrStorage)
)
