package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/slots"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/ptr"
)

type fakeRepo struct{ slots []domain.TimeSlot }

func (r *fakeRepo) ListTimeSlots(ctx context.Context) []domain.TimeSlot {
	return r.slots
}

func newFixture() (*UseCase, []domain.TimeSlot) {
	generated := slots.Generate(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	generated[0].IsAvailable = false
	generated[0].IsBooked = true
	generated[1].IsAvailable = false
	return NewUseCase(&fakeRepo{slots: generated}, logger.NewNop()), generated
}

func TestExecute_AllDays(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2026-10-17", resp.Days[0].Date)
	assert.Equal(t, "2026-10-23", resp.Days[6].Date)

	first := resp.Days[0].Slots
	require.Len(t, first, 10)
	assert.Equal(t, "booked", first[0].Status)
	assert.False(t, first[0].Selectable)
	assert.Equal(t, "unavailable", first[1].Status)
	assert.Equal(t, "available", first[2].Status)
	assert.True(t, first[2].Selectable)
	assert.Equal(t, "11:00", first[2].Time.String())
}

func TestExecute_FilterByDateAndSelectable(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr("2026-10-17"), OnlySelectable: true})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Len(t, resp.Days[0].Slots, 8)
	for _, s := range resp.Days[0].Slots {
		assert.True(t, s.Selectable)
	}
}

func TestExecute_OnlySelectableAcrossWindow(t *testing.T) {
	uc, generated := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{OnlySelectable: true})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Len(t, resp.Days[0].Slots, 8)
	assert.Len(t, resp.Days[1].Slots, 10)

	// исходные слоты репозитория не меняются
	assert.Len(t, generated, 70)
	assert.True(t, generated[0].IsBooked)
}

func TestExecute_DateOutsideWindow(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr("2027-01-01")})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{Date: ptr.Ptr("17.10.2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
