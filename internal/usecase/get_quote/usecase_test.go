package get_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		locationID string
		serviceID  string
		fuel       float64
		total      float64
	}{
		{name: "gangtok normal", locationID: "1", serviceID: "normal", fuel: 0, total: 150},
		{name: "namchi normal", locationID: "2", serviceID: "normal", fuel: 1248, total: 1398},
		{name: "pelling premium", locationID: "3", serviceID: "premium", fuel: 1840, total: 2140},
	}

	uc := NewUseCase(logger.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{LocationID: tt.locationID, ServiceID: tt.serviceID})
			require.NoError(t, err)
			assert.Equal(t, tt.fuel, resp.FuelCharge)
			assert.Equal(t, tt.total, resp.TotalPrice)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(logger.NewNop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{LocationID: "", ServiceID: "normal"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{LocationID: "42", ServiceID: "normal"})
	assert.ErrorIs(t, err, ErrLocationNotFound)

	_, err = uc.Execute(ctx, &Request{LocationID: "1", ServiceID: "gold"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
