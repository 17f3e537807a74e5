package get_available_slots

import "github.com/m04kA/SmartWash-BookingService/pkg/types"

// Request модель запроса слотов
type Request struct {
	Date           *string // Дата в формате YYYY-MM-DD (опционально, по умолчанию всё окно)
	OnlySelectable bool    // Вернуть только слоты, доступные для выбора
}

// Response модель ответа со слотами, сгруппированными по дням
type Response struct {
	Days []DaySlots
}

// DaySlots слоты одного дня
type DaySlots struct {
	Date  string
	Slots []Slot
}

// Slot слот с вычисленным состоянием для отображения
type Slot struct {
	ID          string
	Date        string
	Time        types.TimeString
	IsAvailable bool
	IsBooked    bool
	Selectable  bool
	Status      string // available, booked, unavailable
}
