package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SmartWash-BookingService/internal/catalog"
	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SmartWash-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SmartWash-BookingService/internal/pricing"
	"github.com/m04kA/SmartWash-BookingService/internal/slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil
func NewUseCase(
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: timeProvider,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки выполняются до любой записи: невалидный запрос ничего не сохраняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalizeRequest(req)

	uc.logger.Info("CreateBooking: location=%s, slot=%s, service=%s", req.LocationID, req.SlotID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Справочные данные
	location, ok := catalog.LocationByID(req.LocationID)
	if !ok {
		uc.logger.Warn("CreateBooking: location id=%s not found", req.LocationID)
		return nil, ErrLocationNotFound
	}

	service, ok := catalog.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Слот должен существовать и быть доступен для выбора.
	// Окончательная проверка выполняется в транзакции SaveBooking
	slot, ok := slots.Find(uc.bookingRepo.ListTimeSlots(ctx), req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: slot id=%s not found", req.SlotID)
		return nil, ErrSlotNotFound
	}
	if !slot.IsSelectable() {
		uc.logger.Warn("CreateBooking: slot id=%s is %s", req.SlotID, slot.Status())
		return nil, ErrSlotNotAvailable
	}

	// 4. Снимок бронирования
	quote := pricing.NewQuote(service, location)
	booking := &domain.Booking{
		ID:            uc.newID(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Location:      location,
		TimeSlot:      slot,
		WashService:   service,
		TotalPrice:    quote.TotalPrice,
		FuelCharge:    quote.FuelCharge,
		Status:        domain.StatusPending,
		CreatedAt:     uc.timeProvider.Now(),
		Notes:         req.Notes,
	}

	// 5. Сохранение: повторная проверка слота, бронирование и отметка слота в одной транзакции
	if err := uc.bookingRepo.SaveBooking(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
			uc.logger.Warn("CreateBooking: slot id=%s was taken concurrently", req.SlotID)
			return nil, ErrSlotNotAvailable
		case errors.Is(err, bookingRepo.ErrSlotNotFound):
			uc.logger.Warn("CreateBooking: slot id=%s disappeared before save", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingCreated(service.ID)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", booking.ID, booking.TotalPrice)

	return toResponse(booking), nil
}
