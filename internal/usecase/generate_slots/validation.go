package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

const (
	// DefaultStepMinutes длительность сессии по умолчанию
	DefaultStepMinutes = 60
	MinStepMinutes     = 15
	// MaxRangeDays ограничение на размер одного запроса
	MaxRangeDays = 62
)

type validatedRequest struct {
	from, to  time.Time
	openTime  types.TimeString
	closeTime types.TimeString
	step      int
	weekdays  []time.Weekday
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*validatedRequest, error) {
	from, err := domain.ParseDate(req.From)
	if err != nil {
		return nil, domain.NewValidationError("from must be in YYYY-MM-DD format")
	}
	to, err := domain.ParseDate(req.To)
	if err != nil {
		return nil, domain.NewValidationError("to must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return nil, domain.NewValidationError("to must not be before from")
	}
	if to.Sub(from) >= MaxRangeDays*24*time.Hour {
		return nil, domain.NewValidationError("range must be at most %d days", MaxRangeDays)
	}

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, domain.NewValidationError("openTime must be in HH:MM format")
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, domain.NewValidationError("closeTime must be in HH:MM format")
	}
	if !openTime.IsBefore(closeTime) {
		return nil, domain.NewValidationError("openTime must be before closeTime")
	}

	step := req.StepMinutes
	if step == 0 {
		step = DefaultStepMinutes
	}
	if step < MinStepMinutes {
		return nil, domain.NewValidationError("stepMinutes must be at least %d", MinStepMinutes)
	}

	for _, d := range req.Weekdays {
		if d < time.Sunday || d > time.Saturday {
			return nil, domain.NewValidationError("weekdays must be between 0 (Sunday) and 6 (Saturday)")
		}
	}

	return &validatedRequest{
		from:      from,
		to:        to,
		openTime:  openTime,
		closeTime: closeTime,
		step:      step,
		weekdays:  req.Weekdays,
	}, nil
}
