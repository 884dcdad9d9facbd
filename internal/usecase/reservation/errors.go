package reservation

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrSlotAlreadyBooked возвращается, когда на дату и время уже есть активная запись
	ErrSlotAlreadyBooked = fmt.Errorf("%w: slot already booked", domain.ErrConflict)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("%w: reservation: internal error", domain.ErrStorage)
)
