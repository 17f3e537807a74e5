package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// validateDate проверяет формат даты; пустое значение означает отсутствие фильтра
func validateDate(date *string) (string, error) {
	if date == nil {
		return "", nil
	}

	value := strings.TrimSpace(*date)
	if value == "" {
		return "", nil
	}

	if _, err := time.Parse(domain.DateFormat, value); err != nil {
		return "", fmt.Errorf("%w: date must be in YYYY-MM-DD format: %v", ErrInvalidInput, err)
	}

	return value, nil
}
