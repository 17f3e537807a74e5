package booking

import "errors"

var (
	// ErrStorage возвращается при ошибке чтения или записи хранилища
	ErrStorage = errors.New("booking.repository: storage error")

	// ErrSlotNotFound возвращается, когда слота бронирования нет в текущем окне
	ErrSlotNotFound = errors.New("booking.repository: time slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже забронирован или закрыт
	ErrSlotNotAvailable = errors.New("booking.repository: time slot is not available")

	// ErrDecode возвращается, когда сохранённые данные не удаётся разобрать
	ErrDecode = errors.New("booking.repository: failed to decode stored records")

	// ErrEncode возвращается при ошибке сериализации записей
	ErrEncode = errors.New("booking.repository: failed to encode records")
)
