package domain

import "github.com/m04kA/SmartWash-BookingService/pkg/types"

// SlotStatus отображаемое состояние слота
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusUnavailable SlotStatus = "unavailable"
)

// TimeSlot часовой слот на конкретную дату
// IsAvailable и IsBooked независимы: слот можно заблокировать администратором, не бронируя его
type TimeSlot struct {
	ID          string           `json:"id"`   // "<YYYY-MM-DD>_<hour>"
	Date        string           `json:"date"` // YYYY-MM-DD
	Time        types.TimeString `json:"time"` // HH:MM
	IsAvailable bool             `json:"isAvailable"`
	IsBooked    bool             `json:"isBooked"`
}

// IsSelectable возвращает true, если слот можно выбрать для бронирования
func (s *TimeSlot) IsSelectable() bool {
	return s.IsAvailable && !s.IsBooked
}

// Status возвращает отображаемое состояние; booked имеет приоритет над unavailable
func (s *TimeSlot) Status() SlotStatus {
	if s.IsBooked {
		return SlotStatusBooked
	}
	if !s.IsAvailable {
		return SlotStatusUnavailable
	}
	return SlotStatusAvailable
}
