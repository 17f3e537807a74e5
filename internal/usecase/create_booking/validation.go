package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

// normalizeRequest обрезает пробелы во всех строковых полях; пустые заметки превращаются в nil
func normalizeRequest(req *Request) *Request {
	out := &Request{
		LocationID:    strings.TrimSpace(req.LocationID),
		SlotID:        strings.TrimSpace(req.SlotID),
		ServiceID:     strings.TrimSpace(req.ServiceID),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
	}

	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes != "" {
			out.Notes = &notes
		}
	}

	return out
}

// validateRequest валидирует нормализованный запрос
func validateRequest(req *Request) error {
	if req.LocationID == "" || req.SlotID == "" || req.ServiceID == "" {
		return fmt.Errorf("%w: please complete all steps (location, time slot and service are required)", ErrInvalidInput)
	}

	if req.CustomerName == "" || req.CustomerPhone == "" {
		return fmt.Errorf("%w: please enter your name and phone number", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if utf8.RuneCountInString(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
