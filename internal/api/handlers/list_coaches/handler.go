package list_coaches

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
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

// Handle GET /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context())
	if err != nil {
		h.logger.Error("GET /coaches - Failed to list coaches: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, coaches)
}
