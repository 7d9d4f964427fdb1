package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}

	if req.CoachID != nil && *req.CoachID == "" {
		return fmt.Errorf("%w: coachId must not be empty", ErrInvalidInput)
	}

	if req.Rackets < 0 || req.Rackets > domain.MaxAddOnQuantity {
		return fmt.Errorf("%w: rackets must be in [0, %d]", ErrInvalidInput, domain.MaxAddOnQuantity)
	}

	if req.Shoes < 0 || req.Shoes > domain.MaxAddOnQuantity {
		return fmt.Errorf("%w: shoes must be in [0, %d]", ErrInvalidInput, domain.MaxAddOnQuantity)
	}

	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.IsHourAligned(req.SlotStart) {
		return fmt.Errorf("%w: startTime must be aligned to the hour", ErrInvalidTimeSlot)
	}

	if req.SlotEnd != nil && !req.SlotEnd.Equal(req.SlotStart.Add(domain.SlotDuration)) {
		return fmt.Errorf("%w: slot must last exactly one hour", ErrInvalidTimeSlot)
	}

	return nil
}

// validateWindow проверяет, что слот попадает в часы работы
func validateWindow(slotStart time.Time, window BookingWindow) error {
	loc := window.Location
	if loc == nil {
		loc = time.UTC
	}

	local := slotStart.In(loc)
	if !domain.IsHourAligned(local) {
		return fmt.Errorf("%w: startTime must be aligned to the hour in %s", ErrInvalidTimeSlot, loc)
	}

	hour := local.Hour()
	if hour < window.OpeningHour || hour >= window.ClosingHour {
		return fmt.Errorf("%w: courts are open from %02d:00 to %02d:00",
			ErrInvalidTimeSlot, window.OpeningHour, window.ClosingHour)
	}

	return nil
}
