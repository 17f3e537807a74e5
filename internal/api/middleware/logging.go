package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку лога на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(started))
				return
			}
			logger.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(started))
		})
	}
}

// Recover превращает панику обработчика в 500
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error("panic in %s %s: %v", r.Method, r.URL.Path, p)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
