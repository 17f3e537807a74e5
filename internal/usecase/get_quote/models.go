package get_quote

// Request модель запроса расчёта стоимости
type Request struct {
	LocationID string
	ServiceID  string
}

// Response расчёт стоимости до создания бронирования
type Response struct {
	LocationID   string
	LocationName string
	ServiceID    string
	ServiceName  string
	BasePrice    float64
	DistanceKm   float64
	FuelCharge   float64
	TotalPrice   float64
}
