package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

const msgRequestCancelled = "запрос отменён"

// SimulatedLatency задерживает каждый запрос на delay
// Отмена контекста запроса прерывает ожидание
func SimulatedLatency(delay time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if delay <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
				handlers.RespondError(w, http.StatusServiceUnavailable, msgRequestCancelled)
			}
		})
	}
}
