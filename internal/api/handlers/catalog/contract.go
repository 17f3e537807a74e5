package catalog

import (
	"context"

	"github.com/m04kA/SmartWash-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Locations(ctx context.Context) []models.LocationResponse
	LocationByPincode(ctx context.Context, pincode string) (*models.LocationResponse, error)
	Services(ctx context.Context) []models.ServiceResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
