package update_slot_status

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/service/slots/models"
)

type SlotService interface {
	SetStatus(ctx context.Context, slotID string, req *models.SetStatusRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
