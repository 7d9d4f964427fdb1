package get_coach_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/bookings
// Активные бронирования тренера, сначала ранние
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["coachId"]

	caller, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /coaches/{coachId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !caller.IsCoach(coachID) && !caller.IsAdmin() {
		h.logger.Warn("GET /coaches/{coachId}/bookings - Access denied: coach_id=%s, caller=%s", coachID, caller.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListForCoach(r.Context(), coachID)
	if err != nil {
		h.logger.Error("GET /coaches/{coachId}/bookings - Failed to get bookings: coach_id=%s, error=%v",
			coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coaches/{coachId}/bookings - Bookings retrieved successfully: coach_id=%s, count=%d",
		coachID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
