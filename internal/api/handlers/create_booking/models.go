package create_booking

import (
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	createBooking "github.com/m04kA/SmartWash-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LocationID    string  `json:"locationId"`
	SlotID        string  `json:"slotId"`
	ServiceID     string  `json:"serviceId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Location      domain.Location    `json:"location"`
	TimeSlot      domain.TimeSlot    `json:"timeSlot"`
	WashService   domain.WashService `json:"washService"`
	FuelCharge    float64            `json:"fuelCharge"`
	TotalPrice    float64            `json:"totalPrice"`
	Status        string             `json:"status"`
	Notes         *string            `json:"notes,omitempty"`
	CreatedAt     string             `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		LocationID:    r.LocationID,
		SlotID:        r.SlotID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Location:      resp.Location,
		TimeSlot:      resp.TimeSlot,
		WashService:   resp.WashService,
		FuelCharge:    resp.FuelCharge,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
