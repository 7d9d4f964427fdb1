package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   string  `json:"courtId"`
	StartTime string  `json:"startTime"`         // RFC3339, "2025-06-14T19:00:00Z"
	EndTime   *string `json:"endTime,omitempty"` // RFC3339, должен быть startTime + 1ч
	Rackets   int     `json:"rackets"`
	Shoes     int     `json:"shoes"`
	CoachID   *string `json:"coachId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if r.EndTime != nil {
		parsed, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		end = &parsed
	}

	return &createBooking.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		SlotStart: start,
		SlotEnd:   end,
		Rackets:   r.Rackets,
		Shoes:     r.Shoes,
		CoachID:   r.CoachID,
	}, nil
}
