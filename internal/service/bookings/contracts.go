package bookings

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBookings(ctx context.Context) []*domain.Booking
	GetBooking(ctx context.Context, id string) (*domain.Booking, bool, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
}

// Metrics счетчики бизнес-событий
type Metrics interface {
	BookingStatusUpdated(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
