package get_quote

import getQuote "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_quote"

// QuoteResponse HTTP response model
type QuoteResponse struct {
	LocationID   string  `json:"locationId"`
	LocationName string  `json:"locationName"`
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	BasePrice    float64 `json:"basePrice"`
	DistanceKm   float64 `json:"distanceKm"`
	FuelCharge   float64 `json:"fuelCharge"`
	TotalPrice   float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		LocationID:   resp.LocationID,
		LocationName: resp.LocationName,
		ServiceID:    resp.ServiceID,
		ServiceName:  resp.ServiceName,
		BasePrice:    resp.BasePrice,
		DistanceKm:   resp.DistanceKm,
		FuelCharge:   resp.FuelCharge,
		TotalPrice:   resp.TotalPrice,
	}
}
