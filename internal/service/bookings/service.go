package bookings

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings/models"
)

// Service сервис истории бронирований и смены статусов
type Service struct {
	bookingRepo BookingRepository
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// metrics может быть nil
func NewService(bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает бронирования, новые первыми
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings := s.sortedBookings(ctx)
	if filter.Status != nil {
		filtered := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == *filter.Status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	s.logger.Info("List: returned %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Get получает бронирование по ID
func (s *Service) Get(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus перезаписывает статус бронирования
// Проверяется только допустимость значения статуса, переходы между статусами не ограничены
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateBookingStatus(ctx, id, newStatus); err != nil {
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorage, err)
	}

	if s.metrics != nil {
		s.metrics.BookingStatusUpdated(string(newStatus))
	}

	s.logger.Info("UpdateStatus: booking id=%s %s -> %s", id, booking.Status, newStatus)
	return nil
}

// Cancel отменяет бронирование. Завершённое или уже отменённое бронирование отменить нельзя
func (s *Service) Cancel(ctx context.Context, id string) error {
	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateBookingStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrStorage, err)
	}

	if s.metrics != nil {
		s.metrics.BookingStatusUpdated(string(domain.StatusCancelled))
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return nil
}

// Stats считает бронирования по статусам и выручку по завершённым
func (s *Service) Stats(ctx context.Context) *models.StatsResponse {
	var stats domain.BookingStats

	for _, b := range s.bookingRepo.ListBookings(ctx) {
		stats.Total++
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusCompleted:
			stats.Completed++
			stats.Revenue += b.TotalPrice
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}

	return models.FromDomainStats(stats)
}

// Вспомогательные методы

func (s *Service) get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, found, err := s.bookingRepo.GetBooking(ctx, id)
	if err != nil {
		s.logger.Error("get: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: get - repository error: %v", ErrStorage, err)
	}
	if !found {
		s.logger.Warn("get: booking id=%s not found", id)
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// sortedBookings возвращает бронирования, отсортированные по CreatedAt по убыванию
func (s *Service) sortedBookings(ctx context.Context) []*domain.Booking {
	stored := s.bookingRepo.ListBookings(ctx)
	bookings := make([]*domain.Booking, len(stored))
	copy(bookings, stored)
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings
}
