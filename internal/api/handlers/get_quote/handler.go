package get_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	getQuote "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_quote"
)

const (
	msgMissingParams    = "locationId and serviceId are required"
	msgLocationNotFound = "we don't serve this location yet"
	msgServiceNotFound  = "wash service not found"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote
// Query params: locationId (required), serviceId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getQuote.Request{
		LocationID: query.Get("locationId"),
		ServiceID:  query.Get("serviceId"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /quote - Missing parameters")
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getQuote.ErrLocationNotFound):
			h.logger.Warn("GET /quote - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, getQuote.ErrServiceNotFound):
			h.logger.Warn("GET /quote - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /quote - Failed to calculate quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
