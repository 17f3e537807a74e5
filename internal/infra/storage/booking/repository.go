package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/slots"
)

// Ключи записей в хранилище. Каждая запись хранит коллекцию целиком (JSON-массив)
const (
	BookingsKey  = "smartwash_bookings"
	TimeSlotsKey = "smartwash_timeslots"
)

// Repository репозиторий бронирований и временных слотов
// Все изменения выполняются как read-modify-write всей коллекции
type Repository struct {
	store        Store
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewRepository создает новый экземпляр репозитория
// store и txManager обычно один и тот же объект (kv.TransactionalStore)
func NewRepository(store Store, txManager TransactionManager, timeProvider TimeProvider, logger Logger) *Repository {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Repository{
		store:        store,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListBookings возвращает все бронирования в порядке хранения
// Ошибка хранилища не пробрасывается: возвращается пустой список
func (r *Repository) ListBookings(ctx context.Context) []*domain.Booking {
	bookings, err := r.loadBookings(ctx)
	if err != nil {
		r.logger.Error("ListBookings: falling back to empty list: %v", err)
		return []*domain.Booking{}
	}
	return bookings
}

// GetBooking ищет бронирование по ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, bool, error) {
	bookings, err := r.loadBookings(ctx)
	if err != nil {
		return nil, false, err
	}

	for _, b := range bookings {
		if b.ID == id {
			return b, true, nil
		}
	}
	return nil, false, nil
}

// SaveBooking добавляет бронирование и помечает его слот как забронированный
// Доступность слота проверяется внутри той же транзакции, что и запись:
// два бронирования одного слота не могут быть сохранены оба
func (r *Repository) SaveBooking(ctx context.Context, booking *domain.Booking) error {
	slotID := booking.TimeSlot.ID

	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		stored, err := r.loadSlots(txCtx)
		if err != nil {
			return err
		}
		if len(stored) == 0 {
			stored = slots.Generate(r.timeProvider.Now())
		}

		idx := indexOfSlot(stored, slotID)
		if idx < 0 {
			return ErrSlotNotFound
		}
		if !stored[idx].IsSelectable() {
			return ErrSlotNotAvailable
		}
		stored[idx].IsAvailable = false
		stored[idx].IsBooked = true

		bookings, err := r.loadBookings(txCtx)
		if err != nil {
			return err
		}

		if err := r.storeBookings(txCtx, append(bookings, booking)); err != nil {
			return err
		}
		return r.storeSlots(txCtx, stored)
	})
	if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrSlotNotAvailable) {
		r.logger.Warn("SaveBooking: booking id=%s rejected, slot id=%s: %v", booking.ID, slotID, err)
		return fmt.Errorf("%w: SaveBooking - booking id=%s, slot id=%s", err, booking.ID, slotID)
	}
	if err != nil {
		return fmt.Errorf("%w: SaveBooking - booking id=%s: %v", ErrStorage, booking.ID, err)
	}

	r.logger.Info("SaveBooking: booking id=%s saved, slot id=%s marked booked", booking.ID, slotID)
	return nil
}

// ListTimeSlots возвращает сохранённые слоты
// Если слотов ещё нет, генерирует окно на 7 дней от текущей даты и сохраняет его.
// При ошибке чтения возвращает свежесгенерированные слоты, не сохраняя их
func (r *Repository) ListTimeSlots(ctx context.Context) []domain.TimeSlot {
	stored, err := r.loadSlots(ctx)
	if err != nil {
		r.logger.Error("ListTimeSlots: falling back to generated slots: %v", err)
		return slots.Generate(r.timeProvider.Now())
	}
	if len(stored) > 0 {
		return stored
	}

	generated := slots.Generate(r.timeProvider.Now())
	if err := r.storeSlots(ctx, generated); err != nil {
		r.logger.Warn("ListTimeSlots: failed to persist generated slots: %v", err)
	} else {
		r.logger.Info("ListTimeSlots: generated and stored %d slots", len(generated))
	}

	return generated
}

// SetSlotStatus обновляет флаги слота. Если слот не найден, ничего не делает
func (r *Repository) SetSlotStatus(ctx context.Context, slotID string, isAvailable, isBooked bool) error {
	var updated bool
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = r.setSlotStatus(txCtx, slotID, isAvailable, isBooked)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: SetSlotStatus - slot id=%s: %v", ErrStorage, slotID, err)
	}

	if !updated {
		r.logger.Warn("SetSlotStatus: slot id=%s not found, nothing updated", slotID)
	}
	return nil
}

// UpdateBookingStatus перезаписывает статус бронирования. Если бронирование не найдено, ничего не делает.
// Допустимость перехода между статусами не проверяется
func (r *Repository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	var updated bool
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		bookings, err := r.loadBookings(txCtx)
		if err != nil {
			return err
		}

		for _, b := range bookings {
			if b.ID == bookingID {
				b.Status = status
				updated = true
				break
			}
		}
		if !updated {
			return nil
		}

		return r.storeBookings(txCtx, bookings)
	})
	if err != nil {
		return fmt.Errorf("%w: UpdateBookingStatus - booking id=%s: %v", ErrStorage, bookingID, err)
	}

	if !updated {
		r.logger.Warn("UpdateBookingStatus: booking id=%s not found, nothing updated", bookingID)
	}
	return nil
}

// setSlotStatus выполняется внутри транзакции вызывающего
// Если слотов ещё нет, сначала генерирует их, как ListTimeSlots
func (r *Repository) setSlotStatus(ctx context.Context, slotID string, isAvailable, isBooked bool) (bool, error) {
	stored, err := r.loadSlots(ctx)
	if err != nil {
		return false, err
	}
	if len(stored) == 0 {
		stored = slots.Generate(r.timeProvider.Now())
	}

	idx := indexOfSlot(stored, slotID)
	if idx < 0 {
		return false, nil
	}
	stored[idx].IsAvailable = isAvailable
	stored[idx].IsBooked = isBooked

	if err := r.storeSlots(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func indexOfSlot(stored []domain.TimeSlot, slotID string) int {
	for i := range stored {
		if stored[i].ID == slotID {
			return i
		}
	}
	return -1
}

func (r *Repository) loadBookings(ctx context.Context) ([]*domain.Booking, error) {
	raw, found, err := r.store.Get(ctx, BookingsKey)
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0)
	if !found {
		return bookings, nil
	}

	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrDecode, BookingsKey, err)
	}
	return bookings, nil
}

func (r *Repository) storeBookings(ctx context.Context, bookings []*domain.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, BookingsKey, err)
	}
	return r.store.Set(ctx, BookingsKey, raw)
}

func (r *Repository) loadSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	raw, found, err := r.store.Get(ctx, TimeSlotsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var stored []domain.TimeSlot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrDecode, TimeSlotsKey, err)
	}
	return stored, nil
}

func (r *Repository) storeSlots(ctx context.Context, stored []domain.TimeSlot) error {
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, TimeSlotsKey, err)
	}
	return r.store.Set(ctx, TimeSlotsKey, raw)
}
