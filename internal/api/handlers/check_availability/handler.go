package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
)

const (
	msgInvalidQuery = "некорректные параметры запроса, ожидаются date=YYYY-MM-DD и hour"
	msgInvalidInput = "некорректные параметры проверки"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability
// Query params: date (YYYY-MM-DD), hour, coachId
// Занятый слот не ошибка: ответ 200 с available=false и причиной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["courtId"]

	req, err := ToServiceRequest(r, courtID)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Check(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to check slot: court_id=%s, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/availability - Slot checked: court_id=%s, hour=%d, available=%t",
		courtID, req.Hour, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
