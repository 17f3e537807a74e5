package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SmartWash-BookingService/internal/api/handlers"
	catalogService "github.com/m04kA/SmartWash-BookingService/internal/service/catalog"
)

const (
	msgMissingPincode   = "pincode is required"
	msgLocationNotFound = "sorry, we don't serve this pincode yet"
)

// Handler справочные эндпоинты: локации и тарифы
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Locations GET /api/v1/locations
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Locations(r.Context()))
}

// LocationByPincode GET /api/v1/locations/pincode/{pincode}
func (h *Handler) LocationByPincode(w http.ResponseWriter, r *http.Request) {
	pincode := mux.Vars(r)["pincode"]

	location, err := h.service.LocationByPincode(r.Context(), pincode)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPincode)

		case errors.Is(err, catalogService.ErrLocationNotFound):
			h.logger.Info("GET /locations/pincode/{pincode} - Not serviceable: pincode=%s", pincode)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/pincode/{pincode} - Failed to look up pincode=%s: %v", pincode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, location)
}

// Services GET /api/v1/services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Services(r.Context()))
}
