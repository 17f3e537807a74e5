package catalog

import "errors"

var (
	// ErrLocationNotFound возвращается, когда пинкод не обслуживается
	ErrLocationNotFound = errors.New("catalog.service: location not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog.service: invalid input data")
)
