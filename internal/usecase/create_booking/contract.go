package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListTimeSlots(ctx context.Context) []domain.TimeSlot
	SaveBooking(ctx context.Context, booking *domain.Booking) error
}

// Metrics счетчики бизнес-событий
type Metrics interface {
	BookingCreated(serviceID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
