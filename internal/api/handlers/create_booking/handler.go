package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SmartWash-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgLocationNotFound   = "we don't serve this location yet"
	msgServiceNotFound    = "wash service not found"
	msgSlotNotFound       = "time slot not found"
	msgSlotNotAvailable   = "the selected time slot is no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStorage):
			h.logger.Error("POST /bookings - Failed to save booking: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, slot_id=%s", result.ID, result.TimeSlot.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// validationMessage отдаёт клиенту текст после префикса sentinel-ошибки
func validationMessage(err error) string {
	msg := err.Error()
	prefix := createBooking.ErrInvalidInput.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}
