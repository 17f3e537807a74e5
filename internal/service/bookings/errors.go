package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel возвращается, когда бронирование уже завершено или отменено
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("bookings.service: storage error")
)
