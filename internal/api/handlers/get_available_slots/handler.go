package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate           = "invalid date format, expected YYYY-MM-DD"
	msgInvalidOnlySelectable = "onlySelectable must be true or false"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (optional, YYYY-MM-DD), onlySelectable (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(query.Get("date"), query.Get("onlySelectable"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid onlySelectable: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOnlySelectable)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
