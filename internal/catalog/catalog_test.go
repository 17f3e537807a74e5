package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	all := Locations()
	require.Len(t, all, 7)
	assert.Equal(t, "Gangtok", all[0].Name)

	for _, l := range all {
		assert.GreaterOrEqual(t, l.DistanceFromOffice, 0.0, l.Name)
	}
}

func TestLocations_ReturnsCopy(t *testing.T) {
	all := Locations()
	all[0].Name = "Changed"

	l, ok := LocationByID("1")
	require.True(t, ok)
	assert.Equal(t, "Gangtok", l.Name)
	assert.Equal(t, "Gangtok", Locations()[0].Name)
}

func TestLocationByPincode(t *testing.T) {
	l, ok := LocationByPincode("737113")
	require.True(t, ok)
	assert.Equal(t, "Pelling", l.Name)
	assert.Equal(t, 115.0, l.DistanceFromOffice)

	l, ok = LocationByPincode(" 737126 ")
	require.True(t, ok)
	assert.Equal(t, "Namchi", l.Name)

	_, ok = LocationByPincode("110001")
	assert.False(t, ok)

	assert.True(t, IsServiceablePincode("737132"))
	assert.False(t, IsServiceablePincode(""))
}

func TestLocationByID_NotFound(t *testing.T) {
	_, ok := LocationByID("42")
	assert.False(t, ok)
}

func TestServiceByID(t *testing.T) {
	s, ok := ServiceByID("premium")
	require.True(t, ok)
	assert.Equal(t, 300.0, s.BasePrice)
	assert.Equal(t, 60, s.DurationMinutes)

	s, ok = ServiceByID("normal")
	require.True(t, ok)
	assert.Equal(t, 150.0, s.BasePrice)

	_, ok = ServiceByID("deluxe")
	assert.False(t, ok)

	assert.Len(t, Services(), 2)
}
