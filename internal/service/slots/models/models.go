package models

import "github.com/m04kA/SmartWash-BookingService/internal/domain"

// SetStatusRequest запрос администратора на изменение флагов слота
// Незаданное поле сохраняет текущее значение
type SetStatusRequest struct {
	IsAvailable *bool `json:"isAvailable,omitempty"`
	IsBooked    *bool `json:"isBooked,omitempty"`
}

// SlotResponse слот с вычисленным состоянием
type SlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
	Status      string `json:"status"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:          s.ID,
		Date:        s.Date,
		Time:        s.Time.String(),
		IsAvailable: s.IsAvailable,
		IsBooked:    s.IsBooked,
		Status:      string(s.Status()),
	}
}
