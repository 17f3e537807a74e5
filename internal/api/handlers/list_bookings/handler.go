package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings"
	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "status must be one of: pending, confirmed, in-progress, completed, cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.List(r.Context(), &models.ListBookingsRequest{Status: statusPtr})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
