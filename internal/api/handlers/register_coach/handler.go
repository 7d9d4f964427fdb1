package register_coach

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные тренера"
	msgAlreadyExists      = "тренер с таким ID уже существует"
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

// Handle POST /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCoachRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	coach, err := h.service.RegisterCoach(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /coaches - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, catalog.ErrCoachAlreadyExists):
			h.logger.Warn("POST /coaches - Coach already exists: coach_id=%s", req.ID)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /coaches - Failed to register coach: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches - Coach registered successfully: coach_id=%s", coach.ID)
	handlers.RespondJSON(w, http.StatusCreated, coach)
}
