package memory

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: memory: slot not found", domain.ErrNotFound)

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: memory: appointment not found", domain.ErrNotFound)

	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = fmt.Errorf("%w: memory: contact message not found", domain.ErrNotFound)
)
