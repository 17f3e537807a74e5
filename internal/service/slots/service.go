package slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SmartWash-BookingService/internal/service/slots/models"
	slotgen "github.com/m04kA/SmartWash-BookingService/internal/slots"
)

// Service сервис администрирования слотов
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// SetStatus вручную меняет флаги слота (например, закрывает час на обслуживание)
// Бронирования при этом не затрагиваются
func (s *Service) SetStatus(ctx context.Context, slotID string, req *models.SetStatusRequest) (*models.SlotResponse, error) {
	slotID = strings.TrimSpace(slotID)
	if slotID == "" {
		return nil, fmt.Errorf("%w: slot id is required", ErrInvalidInput)
	}
	if req.IsAvailable == nil && req.IsBooked == nil {
		return nil, fmt.Errorf("%w: isAvailable or isBooked is required", ErrInvalidInput)
	}

	slot, ok := slotgen.Find(s.slotRepo.ListTimeSlots(ctx), slotID)
	if !ok {
		s.logger.Warn("SetStatus: slot id=%s not found", slotID)
		return nil, ErrSlotNotFound
	}

	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}
	if req.IsBooked != nil {
		slot.IsBooked = *req.IsBooked
	}

	if err := s.slotRepo.SetSlotStatus(ctx, slotID, slot.IsAvailable, slot.IsBooked); err != nil {
		s.logger.Error("SetStatus: repository error for slot id=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("SetStatus: slot id=%s is now %s", slotID, slot.Status())
	return models.FromDomainSlot(slot), nil
}
