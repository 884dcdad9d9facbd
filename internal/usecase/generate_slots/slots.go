package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// generateTimeSlots генерирует слоты дня с начала работы с фиксированным шагом.
// Слот не должен выходить за время закрытия. Для сегодняшней даты остаются
// только слоты, которые еще не начались
func generateTimeSlots(
	openTime, closeTime types.TimeString,
	step int,
	date time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if isDateInPast(date, now) {
		return []types.TimeString{}, nil
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(step)
		if err != nil {
			// Конец слота за полночью, значит он точно позже закрытия
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = slotEnd
	}

	if !isSameDay(date, now) {
		return allSlots, nil
	}

	currentTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.IsAfter(currentTime) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming, nil
}

// datesInRange возвращает даты [from, to] с учетом фильтра дней недели
func datesInRange(from, to time.Time, weekdays []time.Weekday) []time.Time {
	allowed := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		allowed[d] = true
	}

	dates := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(allowed) > 0 && !allowed[d.Weekday()] {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
