package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromHour(t *testing.T) {
	ts, err := NewTimeStringFromHour(9)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	ts, err = NewTimeStringFromHour(18)
	require.NoError(t, err)
	assert.Equal(t, "18:00", ts.String())

	_, err = NewTimeStringFromHour(24)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Hour(t *testing.T) {
	h, err := TimeString("14:30").Hour()
	require.NoError(t, err)
	assert.Equal(t, 14, h)

	_, err = TimeString("2pm").Hour()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 1, 1, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		Time TimeString `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"time":"10:00"}`), &payload))
	assert.Equal(t, TimeString("10:00"), payload.Time)

	err := json.Unmarshal([]byte(`{"time":"25:99"}`), &payload)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	require.NoError(t, json.Unmarshal([]byte(`{"time":""}`), &payload))
	assert.True(t, payload.Time.IsZero())
}
