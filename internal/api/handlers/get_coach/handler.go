package get_coach

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog"
)

const (
	msgCoachNotFound = "тренер не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["coachId"]

	coach, err := h.service.GetCoach(r.Context(), coachID)
	if err != nil {
		if errors.Is(err, catalog.ErrCoachNotFound) {
			h.logger.Warn("GET /coaches/{coachId} - Coach not found: coach_id=%s", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)
			return
		}
		h.logger.Error("GET /coaches/{coachId} - Failed to get coach: coach_id=%s, error=%v", coachID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, coach)
}
