package get_booking

import (
	"context"
	"encoding/json"
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
	"github.com/m04kA/SmartWash-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC) }

func newHandler(t *testing.T) *Handler {
	t.Helper()
	store := memstore.New()
	repo := booking.NewRepository(store, store, fixedTime{}, logger.NewNop())
	require.NoError(t, repo.SaveBooking(context.Background(), &domain.Booking{
		ID:        "b-1",
		TimeSlot:  domain.TimeSlot{ID: "2026-10-17_9"},
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
	}))
	return NewHandler(bookings.NewService(repo, nil, logger.NewNop()), logger.NewNop())
}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	// id передаётся только через переменные маршрута: пробельный id не годится для URL
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/x", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	h := newHandler(t)

	rec := get(h, "b-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)

	assert.Equal(t, http.StatusNotFound, get(h, "missing").Code)
}

func TestHandle_BlankID(t *testing.T) {
	h := newHandler(t)

	for _, id := range []string{"", " ", "\t"} {
		rec := get(h, id)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id=%q", id)
	}
}
