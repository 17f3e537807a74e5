package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrLocationNotFound возвращается, когда локация не обслуживается
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotFound возвращается, когда слота нет в текущем окне
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже забронирован или закрыт
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrStorage возвращается, когда бронирование не удалось сохранить
	ErrStorage = errors.New("create_booking: failed to save booking")
)
