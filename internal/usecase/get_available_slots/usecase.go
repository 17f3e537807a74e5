package get_available_slots

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/slots"
)

// UseCase use case для получения временных слотов
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает слоты текущего окна, сгруппированные по дням в порядке хранения
// Дата вне окна даёт пустой результат, а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := validateDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	all := uc.bookingRepo.ListTimeSlots(ctx)

	filtered := all
	if date != "" {
		filtered = make([]domain.TimeSlot, 0, len(all))
		for _, s := range all {
			if s.Date == date {
				filtered = append(filtered, s)
			}
		}
	}
	if req.OnlySelectable {
		filtered = slots.Selectable(filtered)
	}

	days := slots.GroupByDate(filtered)
	result := &Response{Days: make([]DaySlots, 0, len(days))}
	for _, day := range days {
		out := DaySlots{Date: day.Date, Slots: make([]Slot, 0, len(day.Slots))}
		for i := range day.Slots {
			out.Slots = append(out.Slots, toSlot(&day.Slots[i]))
		}
		result.Days = append(result.Days, out)
	}

	uc.logger.Info("GetAvailableSlots: date=%q, onlySelectable=%t, returned %d of %d slots",
		date, req.OnlySelectable, len(filtered), len(all))

	return result, nil
}

func toSlot(s *domain.TimeSlot) Slot {
	return Slot{
		ID:          s.ID,
		Date:        s.Date,
		Time:        s.Time,
		IsAvailable: s.IsAvailable,
		IsBooked:    s.IsBooked,
		Selectable:  s.IsSelectable(),
		Status:      string(s.Status()),
	}
}
