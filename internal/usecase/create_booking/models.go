package create_booking

import (
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	LocationID    string  // ID локации из справочника
	SlotID        string  // ID слота, "<YYYY-MM-DD>_<hour>"
	ServiceID     string  // ID услуги (normal, premium)
	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	Notes         *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Status        string

	// Снимки справочных данных на момент создания
	Location    domain.Location
	TimeSlot    domain.TimeSlot
	WashService domain.WashService

	FuelCharge float64
	TotalPrice float64
	Notes      *string
	CreatedAt  time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        string(b.Status),
		Location:      b.Location,
		TimeSlot:      b.TimeSlot,
		WashService:   b.WashService,
		FuelCharge:    b.FuelCharge,
		TotalPrice:    b.TotalPrice,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}
