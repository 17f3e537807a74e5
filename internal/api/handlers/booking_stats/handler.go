package booking_stats

import (
	"net/http"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())

	h.logger.Info("GET /bookings/stats - total=%d, completed=%d", stats.Total, stats.Completed)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
