package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слота нет в текущем окне
	ErrSlotNotFound = errors.New("slots.service: time slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots.service: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("slots.service: storage error")
)
