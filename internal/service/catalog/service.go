package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SmartWash-BookingService/internal/catalog"
	"github.com/m04kA/SmartWash-BookingService/internal/pricing"
	"github.com/m04kA/SmartWash-BookingService/internal/service/catalog/models"
)

// Service справочник локаций и тарифов для первых шагов бронирования
type Service struct {
	logger Logger
}

func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Locations возвращает обслуживаемые локации со стоимостью выезда
func (s *Service) Locations(ctx context.Context) []models.LocationResponse {
	locations := catalog.Locations()
	result := make([]models.LocationResponse, 0, len(locations))
	for _, l := range locations {
		result = append(result, models.FromDomainLocation(l, pricing.FuelCharge(l)))
	}
	return result
}

// LocationByPincode проверяет, обслуживается ли пинкод
func (s *Service) LocationByPincode(ctx context.Context, pincode string) (*models.LocationResponse, error) {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return nil, fmt.Errorf("%w: pincode is required", ErrInvalidInput)
	}

	if !catalog.IsServiceablePincode(pincode) {
		s.logger.Info("LocationByPincode: pincode=%s is not serviceable", pincode)
		return nil, ErrLocationNotFound
	}

	location, _ := catalog.LocationByPincode(pincode)

	resp := models.FromDomainLocation(location, pricing.FuelCharge(location))
	return &resp, nil
}

// Services возвращает тарифы мойки
func (s *Service) Services(ctx context.Context) []models.ServiceResponse {
	services := catalog.Services()
	result := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, models.FromDomainService(svc))
	}
	return result
}
