package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// routerOptions параметры роутера, не относящиеся к обработчикам
type routerOptions struct {
	Metrics          *metrics.Metrics // nil, если метрики выключены
	MetricsPath      string
	SimulatedLatency time.Duration
}

// newRouter настраивает маршруты API
func newRouter(h *handlerSet, opts routerOptions) *mux.Router {
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SimulatedLatency(opts.SimulatedLatency))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/courts", h.listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches", h.listCoaches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches/{coachId}", h.getCoach.Handle).Methods(http.MethodGet)

	// --- Цена и доступность слота ---
	api.HandleFunc("/courts/{courtId}/price", h.getPrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/availability", h.checkAvailability.Handle).Methods(http.MethodGet)

	// Сетка слотов на день
	api.HandleFunc("/slots", h.getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущие правила ценообразования
	api.HandleFunc("/pricing-rules", h.getPricingRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", h.getBookingsByDate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", h.getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", h.cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/respond", h.respondBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя и расписание тренера
	protected.HandleFunc("/users/{userId}/bookings", h.getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/coaches/{coachId}/bookings", h.getCoachBookings.Handle).Methods(http.MethodGet)

	// Закрытие и открытие слотов тренером
	protected.HandleFunc("/coaches/{coachId}/blackouts", h.toggleBlackout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/admin/bookings", h.getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/stats", h.getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/coaches", h.registerCoach.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/pricing-rules", h.updatePricingRules.Handle).Methods(http.MethodPut)

	return r
}
