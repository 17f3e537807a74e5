package domain

// Location обслуживаемый населённый пункт
type Location struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Pincode            string  `json:"pincode"`
	DistanceFromOffice float64 `json:"distanceFromOffice"` // км от базы в одну сторону
}

// WashService тариф мойки
type WashService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes int     `json:"duration"`
}
