package get_price

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
)

const (
	msgInvalidQuery = "некорректные параметры запроса, ожидаются date=YYYY-MM-DD и hour"
	msgInvalidInput = "некорректные параметры расчёта"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/price
// Query params: date (YYYY-MM-DD), hour, rackets, shoes, coachId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID := mux.Vars(r)["courtId"]

	req, err := ToServiceRequest(r, courtID)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/price - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	breakdown, err := h.service.Quote(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/price - Invalid input: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /courts/{id}/price - Failed to calculate price: court_id=%s, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/price - Price calculated: court_id=%s, total=%.2f", courtID, breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainPricing(breakdown))
}
