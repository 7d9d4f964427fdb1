package toggle_blackout

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "slotStart должен быть началом часа в формате RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgCoachNotFound      = "тренер не найден"
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

// Handle POST /api/v1/coaches/{coachId}/blackouts
// Закрывает слот, если он открыт, и открывает, если закрыт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coachID := mux.Vars(r)["coachId"]

	caller, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /coaches/{coachId}/blackouts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if !caller.IsCoach(coachID) && !caller.IsAdmin() {
		h.logger.Warn("POST /coaches/{coachId}/blackouts - Access denied: coach_id=%s, caller=%s", coachID, caller.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req ToggleBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{coachId}/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slotStart, err := time.Parse(time.RFC3339, req.SlotStart)
	if err != nil {
		h.logger.Warn("POST /coaches/{coachId}/blackouts - Invalid slotStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.service.ToggleBlackout(r.Context(), coachID, slotStart)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{coachId}/blackouts - Invalid slot: coach_id=%s, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, catalog.ErrCoachNotFound):
			h.logger.Warn("POST /coaches/{coachId}/blackouts - Coach not found: coach_id=%s", coachID)
			handlers.RespondNotFound(w, msgCoachNotFound)

		default:
			h.logger.Error("POST /coaches/{coachId}/blackouts - Failed to toggle blackout: coach_id=%s, error=%v",
				coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{coachId}/blackouts - Blackout toggled: coach_id=%s, slot=%s, blocked=%t",
		coachID, req.SlotStart, result.Blocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
