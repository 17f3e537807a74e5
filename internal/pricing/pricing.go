package pricing

import "github.com/m04kA/SmartWash-BookingService/internal/domain"

// Quote расчёт стоимости для пары услуга + локация, ещё не сохранённый
type Quote struct {
	BasePrice  float64
	DistanceKm float64
	FuelCharge float64
	TotalPrice float64
}

// FuelCharge стоимость выезда: расстояние * ставка * 2 (туда и обратно)
func FuelCharge(location domain.Location) float64 {
	distance := location.DistanceFromOffice
	if distance < 0 {
		distance = 0
	}
	return distance * domain.FuelRatePerKm * 2
}

// TotalPrice базовая цена услуги плюс стоимость выезда
func TotalPrice(service domain.WashService, location domain.Location) float64 {
	return service.BasePrice + FuelCharge(location)
}

func NewQuote(service domain.WashService, location domain.Location) Quote {
	fuel := FuelCharge(location)
	return Quote{
		BasePrice:  service.BasePrice,
		DistanceKm: location.DistanceFromOffice,
		FuelCharge: fuel,
		TotalPrice: service.BasePrice + fuel,
	}
}
