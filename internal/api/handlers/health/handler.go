package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	backend string
	pinger  Pinger
	logger  Logger
}

// NewHandler pinger может быть nil (хранилище в памяти всегда доступно)
func NewHandler(backend string, pinger Pinger, logger Logger) *Handler {
	return &Handler{
		backend: backend,
		pinger:  pinger,
		logger:  logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Warn("GET /health - %s storage is unavailable: %v", h.backend, err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "degraded", Storage: h.backend})
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Storage: h.backend})
}
