package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/pkg/types"
)

// DaySlots слоты одной даты
type DaySlots struct {
	Date  string
	Slots []domain.TimeSlot
}

// SlotID детерминированный идентификатор слота: "<YYYY-MM-DD>_<hour>"
func SlotID(date string, hour int) string {
	return fmt.Sprintf("%s_%d", date, hour)
}

// Generate генерирует канонический набор слотов на SlotWindowDays дней, начиная с календарной даты today
// (в часовом поясе today). Часы SlotFirstHour..SlotLastHour включительно, по одному слоту в час.
// Для одного и того же дня результат всегда одинаков
func Generate(today time.Time) []domain.TimeSlot {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	result := make([]domain.TimeSlot, 0, domain.SlotWindowDays*domain.SlotsPerDay)
	for day := 0; day < domain.SlotWindowDays; day++ {
		date := start.AddDate(0, 0, day).Format(domain.DateFormat)

		for hour := domain.SlotFirstHour; hour <= domain.SlotLastHour; hour++ {
			// hour всегда в диапазоне 0..23, ошибка невозможна
			label, _ := types.NewTimeStringFromHour(hour)

			result = append(result, domain.TimeSlot{
				ID:          SlotID(date, hour),
				Date:        date,
				Time:        label,
				IsAvailable: true,
				IsBooked:    false,
			})
		}
	}

	return result
}

// Selectable оставляет только слоты, доступные для выбора
func Selectable(slots []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(slots))
	for i := range slots {
		if slots[i].IsSelectable() {
			result = append(result, slots[i])
		}
	}
	return result
}

// GroupByDate группирует слоты по дате, сохраняя порядок первого появления даты
func GroupByDate(slots []domain.TimeSlot) []DaySlots {
	index := make(map[string]int)
	result := make([]DaySlots, 0)

	for _, slot := range slots {
		i, ok := index[slot.Date]
		if !ok {
			i = len(result)
			index[slot.Date] = i
			result = append(result, DaySlots{Date: slot.Date})
		}
		result[i].Slots = append(result[i].Slots, slot)
	}

	return result
}

// Find ищет слот по ID
func Find(slots []domain.TimeSlot, id string) (domain.TimeSlot, bool) {
	for _, slot := range slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return domain.TimeSlot{}, false
}
