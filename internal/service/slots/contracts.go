package slots

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListTimeSlots(ctx context.Context) []domain.TimeSlot
	SetSlotStatus(ctx context.Context, slotID string, isAvailable, isBooked bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
