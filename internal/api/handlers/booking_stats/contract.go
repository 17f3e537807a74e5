package booking_stats

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Stats(ctx context.Context) *models.StatsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
