package get_quote

import (
	"context"
	"strings"

	"github.com/m04kA/SmartWash-BookingService/internal/catalog"
	"github.com/m04kA/SmartWash-BookingService/internal/pricing"
)

// UseCase use case для расчёта стоимости мойки с выездом
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute рассчитывает стоимость для пары локация + услуга
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	locationID := strings.TrimSpace(req.LocationID)
	serviceID := strings.TrimSpace(req.ServiceID)

	if locationID == "" || serviceID == "" {
		return nil, ErrInvalidInput
	}

	location, ok := catalog.LocationByID(locationID)
	if !ok {
		uc.logger.Warn("GetQuote: location id=%s not found", locationID)
		return nil, ErrLocationNotFound
	}

	service, ok := catalog.ServiceByID(serviceID)
	if !ok {
		uc.logger.Warn("GetQuote: service id=%s not found", serviceID)
		return nil, ErrServiceNotFound
	}

	quote := pricing.NewQuote(service, location)

	return &Response{
		LocationID:   location.ID,
		LocationName: location.Name,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		BasePrice:    quote.BasePrice,
		DistanceKm:   quote.DistanceKm,
		FuelCharge:   quote.FuelCharge,
		TotalPrice:   quote.TotalPrice,
	}, nil
}
