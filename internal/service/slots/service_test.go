package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/service/slots/models"
	slotgen "github.com/m04kA/SmartWash-BookingService/internal/slots"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/ptr"
)

type fakeRepo struct {
	slots  []domain.TimeSlot
	setErr error
	calls  int
}

func (r *fakeRepo) ListTimeSlots(ctx context.Context) []domain.TimeSlot {
	return r.slots
}

func (r *fakeRepo) SetSlotStatus(ctx context.Context, slotID string, isAvailable, isBooked bool) error {
	r.calls++
	if r.setErr != nil {
		return r.setErr
	}
	for i := range r.slots {
		if r.slots[i].ID == slotID {
			r.slots[i].IsAvailable = isAvailable
			r.slots[i].IsBooked = isBooked
		}
	}
	return nil
}

func newFixture() (*Service, *fakeRepo) {
	repo := &fakeRepo{slots: slotgen.Generate(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))}
	return NewService(repo, logger.NewNop()), repo
}

func TestSetStatus_Block(t *testing.T) {
	svc, repo := newFixture()

	resp, err := svc.SetStatus(context.Background(), "2026-10-17_12", &models.SetStatusRequest{IsAvailable: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "12:00", resp.Time)

	slot, ok := slotgen.Find(repo.slots, "2026-10-17_12")
	require.True(t, ok)
	assert.False(t, slot.IsAvailable)
	assert.False(t, slot.IsBooked)
}

func TestSetStatus_BookedWinsOverUnavailable(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.SetStatus(context.Background(), "2026-10-17_9",
		&models.SetStatusRequest{IsAvailable: ptr.Ptr(false), IsBooked: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "booked", resp.Status)
}

func TestSetStatus_Errors(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "", &models.SetStatusRequest{IsBooked: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetStatus(ctx, "2026-10-17_9", &models.SetStatusRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetStatus(ctx, "2026-10-17_7", &models.SetStatusRequest{IsBooked: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Zero(t, repo.calls)

	repo.setErr = errors.New("write failed")
	_, err = svc.SetStatus(ctx, "2026-10-17_9", &models.SetStatusRequest{IsBooked: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrStorage)
}
