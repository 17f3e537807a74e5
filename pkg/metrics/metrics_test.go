package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New("smartwash")
	b := New("smartwash")

	a.BookingCreated("normal")
	a.BookingCreated("normal")
	b.BookingCreated("premium")

	assert.Equal(t, 2.0, testutil.ToFloat64(a.BookingsCreatedTotal.WithLabelValues("normal")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.BookingsCreatedTotal.WithLabelValues("normal")))
}

func TestObserveStorage_Result(t *testing.T) {
	m := New("smartwash")

	m.ObserveStorage("memory", "get", nil, time.Now())
	m.ObserveStorage("memory", "set", errors.New("boom"), time.Now())

	// ok и error попадают в разные серии
	assert.Equal(t, 2, testutil.CollectAndCount(m.StorageOperationDuration))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("smartwash")
	m.BookingStatusUpdated("confirmed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `smartwash_booking_status_updates_total{status="confirmed"} 1`)
}
