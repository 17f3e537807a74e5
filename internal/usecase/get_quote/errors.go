package get_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrLocationNotFound возвращается, когда локация не обслуживается
	ErrLocationNotFound = errors.New("get_quote: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_quote: service not found")
)
