package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/metrics"
)

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/bookings/{bookingId}", "404")))
}

func TestRecover(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Recover(logger.NewNop()), Logging(logger.NewNop()))
	router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
