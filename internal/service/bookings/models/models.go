package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest запрос на получение истории бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	if r == nil || r.Status == nil || strings.TrimSpace(*r.Status) == "" {
		return filter, nil
	}

	status, err := ToDomainBookingStatus(*r.Status)
	if err != nil {
		return filter, err
	}
	filter.Status = &status
	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Status        string `json:"status"`

	// Снимки на момент создания
	Location    domain.Location    `json:"location"`
	TimeSlot    domain.TimeSlot    `json:"timeSlot"`
	WashService domain.WashService `json:"washService"`

	FuelCharge float64   `json:"fuelCharge"`
	TotalPrice float64   `json:"totalPrice"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse сводка по бронированиям
type StatsResponse struct {
	Total      int     `json:"total"`
	Pending    int     `json:"pending"`
	Confirmed  int     `json:"confirmed"`
	InProgress int     `json:"inProgress"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
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

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStats конвертирует сводку в DTO
func FromDomainStats(s domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		Total:      s.Total,
		Pending:    s.Pending,
		Confirmed:  s.Confirmed,
		InProgress: s.InProgress,
		Completed:  s.Completed,
		Cancelled:  s.Cancelled,
		Revenue:    s.Revenue,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.TrimSpace(status))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
