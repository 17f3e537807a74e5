package models

import "github.com/m04kA/SmartWash-BookingService/internal/domain"

// LocationResponse обслуживаемая локация
type LocationResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Pincode            string  `json:"pincode"`
	DistanceFromOffice float64 `json:"distanceFromOffice"`
	FuelCharge         float64 `json:"fuelCharge"`
}

// ServiceResponse тариф мойки
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Duration    int     `json:"duration"` // минуты
}

func FromDomainLocation(l domain.Location, fuelCharge float64) LocationResponse {
	return LocationResponse{
		ID:                 l.ID,
		Name:               l.Name,
		Pincode:            l.Pincode,
		DistanceFromOffice: l.DistanceFromOffice,
		FuelCharge:         fuelCharge,
	}
}

func FromDomainService(s domain.WashService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Duration:    s.DurationMinutes,
	}
}
