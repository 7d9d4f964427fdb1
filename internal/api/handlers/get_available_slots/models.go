package get_available_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date    string               `json:"date"`
	CoachID *string              `json:"coachId,omitempty"`
	Courts  []CourtSlotsResponse `json:"courts"`
}

// CourtSlotsResponse слоты одного корта
type CourtSlotsResponse struct {
	CourtID   string         `json:"courtId"`
	CourtName string         `json:"courtName"`
	Category  string         `json:"category"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse один слот сетки
type SlotResponse struct {
	Hour      int       `json:"hour"`
	StartTime time.Time `json:"startTime"`
	State     string    `json:"state"`
	Reason    string    `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(r *http.Request) (*getAvailableSlots.Request, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:    date,
		CourtID: handlers.QueryString(r, "courtId"),
		CoachID: handlers.QueryString(r, "coachId"),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DaySlotsResponse {
	out := &DaySlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		CoachID: resp.CoachID,
		Courts:  make([]CourtSlotsResponse, 0, len(resp.Courts)),
	}

	for _, c := range resp.Courts {
		court := CourtSlotsResponse{
			CourtID:   c.Court.ID,
			CourtName: c.Court.Name,
			Category:  string(c.Court.Category),
			Slots:     make([]SlotResponse, 0, len(c.Slots)),
		}
		for _, s := range c.Slots {
			court.Slots = append(court.Slots, SlotResponse{
				Hour:      s.Hour,
				StartTime: s.Start,
				State:     string(s.State),
				Reason:    s.Reason,
			})
		}
		out.Courts = append(out.Courts, court)
	}

	return out
}
