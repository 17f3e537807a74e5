package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true for completed and cancelled
func (s BookingStatus) IsTerminal() bool {
	for _, terminal := range TerminalStatuses {
		if s == terminal {
			return true
		}
	}
	return false
}

// Booking represents a car wash booking
// Location, TimeSlot and WashService are snapshots taken at creation time
type Booking struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Location      Location      `json:"location"`
	TimeSlot      TimeSlot      `json:"timeSlot"`
	WashService   WashService   `json:"washService"`
	TotalPrice    float64       `json:"totalPrice"`
	FuelCharge    float64       `json:"fuelCharge"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	Notes         *string       `json:"notes,omitempty"`
}

// IsActive returns true if the booking has not reached a terminal status
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	Status *BookingStatus // nil - все статусы
}

// BookingStats сводка по бронированиям для экрана истории
type BookingStats struct {
	Total      int
	Pending    int
	Confirmed  int
	InProgress int
	Completed  int
	Cancelled  int
	Revenue    float64 // сумма TotalPrice завершённых бронирований
}
