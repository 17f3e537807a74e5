package get_available_slots

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// BookingRepository источник временных слотов
type BookingRepository interface {
	ListTimeSlots(ctx context.Context) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
