package get_pricing_rules

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing-rules - Failed to get rules: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rules)
}
