package update_slot_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	"github.com/m04kA/SmartWash-BookingService/internal/service/slots"
	"github.com/m04kA/SmartWash-BookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "isAvailable or isBooked is required"
	msgNotFound           = "time slot not found"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req models.SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{id} - Invalid input: slot_id=%s, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrStorage):
			h.logger.Error("PATCH /slots/{id} - Storage error: slot_id=%s, error=%v", slotID, err)
			handlers.RespondUnavailable(w)

		default:
			h.logger.Error("PATCH /slots/{id} - Failed to update slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id} - Slot updated successfully: slot_id=%s, status=%s", slotID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
