package domain

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// AvailabilitySlot интервал в расписании коуча
type AvailabilitySlot struct {
	ID          string
	Date        time.Time
	Time        types.TimeString
	IsAvailable bool
	CreatedBy   *string
	CreatedAt   time.Time
}

// DateString дата слота в формате YYYY-MM-DD
func (s *AvailabilitySlot) DateString() string {
	return s.Date.Format(DateFormat)
}

// SlotFilter фильтр списка слотов
type SlotFilter struct {
	Date          *time.Time // nil - все даты
	OnlyAvailable bool
}
