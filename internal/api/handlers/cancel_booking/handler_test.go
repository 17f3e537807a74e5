package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SmartWash-BookingService/internal/domain"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv/memstore"
	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC) }

func patch(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	repo := booking.NewRepository(store, store, fixedTime{}, logger.NewNop())
	require.NoError(t, repo.SaveBooking(ctx, &domain.Booking{
		ID:       "b-1",
		TimeSlot: domain.TimeSlot{ID: "2026-10-17_9"},
		Status:   domain.StatusConfirmed,
	}))

	h := NewHandler(bookings.NewService(repo, nil, logger.NewNop()), logger.NewNop())

	assert.Equal(t, http.StatusNoContent, patch(h, "b-1").Code)

	b, found, err := repo.GetBooking(ctx, "b-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.StatusCancelled, b.Status)

	// повторная отмена
	assert.Equal(t, http.StatusConflict, patch(h, "b-1").Code)
	assert.Equal(t, http.StatusNotFound, patch(h, "b-2").Code)
}
