package get_available_slots

import (
	"strconv"

	getAvailableSlots "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Days []DayResponse `json:"days"`
}

// DayResponse слоты одного дня
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse слот с отображаемым состоянием
type SlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
	Selectable  bool   `json:"selectable"`
	Status      string `json:"status"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(date string, onlySelectable string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{}
	if date != "" {
		req.Date = &date
	}

	if onlySelectable != "" {
		v, err := strconv.ParseBool(onlySelectable)
		if err != nil {
			return nil, err
		}
		req.OnlySelectable = v
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, SlotResponse{
				ID:          s.ID,
				Date:        s.Date,
				Time:        s.Time.String(),
				IsAvailable: s.IsAvailable,
				IsBooked:    s.IsBooked,
				Selectable:  s.Selectable,
				Status:      s.Status,
			})
		}
		days = append(days, DayResponse{Date: day.Date, Slots: slots})
	}
	return &SlotsResponse{Days: days}
}
