package check_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool      `json:"available"`
	Kind      string    `json:"kind,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	SlotStart time.Time `json:"slotStart"`
	SlotEnd   time.Time `json:"slotEnd"`
}

// ToServiceRequest собирает запрос проверки из URL и query параметров
func ToServiceRequest(r *http.Request, courtID string) (availability.Request, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return availability.Request{}, err
	}

	hour, err := handlers.QueryInt(r, "hour", -1)
	if err != nil {
		return availability.Request{}, err
	}

	return availability.Request{
		CourtID: courtID,
		Date:    date,
		Hour:    hour,
		CoachID: handlers.QueryString(r, "coachId"),
	}, nil
}

// FromServiceResult конвертирует результат проверки в HTTP response
func FromServiceResult(res *availability.Result) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: res.Available,
		Kind:      string(res.Kind),
		Reason:    res.Reason,
		SlotStart: res.SlotStart,
		SlotEnd:   res.SlotEnd,
	}
}
