// Package catalog holds the static reference data: serviceable locations and wash tiers.
// Tables are built once at package initialization and never modified.
package catalog

import (
	"strings"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
)

var locations = []domain.Location{
	{ID: "1", Name: "Gangtok", Pincode: "737101", DistanceFromOffice: 0},
	{ID: "2", Name: "Namchi", Pincode: "737126", DistanceFromOffice: 78},
	{ID: "3", Name: "Pelling", Pincode: "737113", DistanceFromOffice: 115},
	{ID: "4", Name: "Mangan", Pincode: "737116", DistanceFromOffice: 68},
	{ID: "5", Name: "Geyzing", Pincode: "737111", DistanceFromOffice: 110},
	{ID: "6", Name: "Jorethang", Pincode: "737121", DistanceFromOffice: 95},
	{ID: "7", Name: "Rangpo", Pincode: "737132", DistanceFromOffice: 45},
}

var services = []domain.WashService{
	{
		ID:              "normal",
		Name:            "Normal Wash",
		Description:     "Basic exterior wash with soap and water",
		BasePrice:       150,
		DurationMinutes: 30,
	},
	{
		ID:              "premium",
		Name:            "Premium Wash",
		Description:     "Complete wash with interior cleaning, wax, and polish",
		BasePrice:       300,
		DurationMinutes: 60,
	},
}

var (
	locationsByID      = make(map[string]domain.Location, len(locations))
	locationsByPincode = make(map[string]domain.Location, len(locations))
	servicesByID       = make(map[string]domain.WashService, len(services))
)

func init() {
	for _, l := range locations {
		locationsByID[l.ID] = l
		locationsByPincode[l.Pincode] = l
	}
	for _, s := range services {
		servicesByID[s.ID] = s
	}
}

// Locations returns all serviceable locations in display order.
func Locations() []domain.Location {
	out := make([]domain.Location, len(locations))
	copy(out, locations)
	return out
}

// Services returns all wash tiers in display order.
func Services() []domain.WashService {
	out := make([]domain.WashService, len(services))
	copy(out, services)
	return out
}

func LocationByID(id string) (domain.Location, bool) {
	l, ok := locationsByID[strings.TrimSpace(id)]
	return l, ok
}

func LocationByPincode(pincode string) (domain.Location, bool) {
	l, ok := locationsByPincode[strings.TrimSpace(pincode)]
	return l, ok
}

// IsServiceablePincode reports whether the pincode belongs to a served location.
func IsServiceablePincode(pincode string) bool {
	_, ok := LocationByPincode(pincode)
	return ok
}

func ServiceByID(id string) (domain.WashService, bool) {
	s, ok := servicesByID[strings.TrimSpace(id)]
	return s, ok
}
