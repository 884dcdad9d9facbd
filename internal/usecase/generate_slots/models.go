package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Request модель запроса на генерацию сетки слотов
type Request struct {
	Actor       domain.Actor
	From        string         // "2025-03-10"
	To          string         // включительно
	OpenTime    string         // "09:00"
	CloseTime   string         // последний слот заканчивается не позже
	StepMinutes int            // длительность слота, 0 - DefaultStepMinutes
	Weekdays    []time.Weekday // пусто - все дни
}

// Response результат генерации
type Response struct {
	Created []*domain.AvailabilitySlot
	Skipped int // слоты, которые уже были в расписании
}
