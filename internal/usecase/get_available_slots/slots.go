package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
)

// buildCourtSlots строит слоты корта с часа открытия до часа закрытия
// Приоритет состояний: занят корт, слот прошёл, тренер недоступен, свободен
func buildCourtSlots(
	court domain.Court,
	date time.Time,
	window Window,
	now time.Time,
	active []*domain.Booking,
	coach *domain.Coach,
) []domain.DaySlot {
	slots := make([]domain.DaySlot, 0, window.ClosingHour-window.OpeningHour)

	for hour := window.OpeningHour; hour < window.ClosingHour; hour++ {
		// Час, пропущенный при переходе на летнее время, слотом не является
		start, ok := domain.LocalSlotStart(date, hour, window.Location)
		if !ok {
			continue
		}
		end := start.Add(domain.SlotDuration)

		slot := domain.DaySlot{
			CourtID: court.ID,
			Start:   start,
			Hour:    hour,
			State:   domain.SlotFree,
		}

		switch {
		case courtBooked(court.ID, start, end, active):
			slot.State = domain.SlotBooked
			slot.Reason = availability.ReasonCourtBooked
		case domain.IsSlotPast(start, now):
			slot.State = domain.SlotPast
		case coach != nil && coach.IsBlocked(start):
			slot.State = domain.SlotBlocked
			slot.Reason = availability.ReasonCoachBlocked
		case coach != nil && coachBooked(coach.ID, start, end, active):
			slot.State = domain.SlotBlocked
			slot.Reason = availability.ReasonCoachUnavailable
		}

		slots = append(slots, slot)
	}

	return slots
}

func courtBooked(courtID string, start, end time.Time, active []*domain.Booking) bool {
	for _, b := range active {
		if b.IsActive() && b.CourtID == courtID && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func coachBooked(coachID string, start, end time.Time, active []*domain.Booking) bool {
	for _, b := range active {
		if b.IsActive() && b.HasCoach() && *b.CoachID == coachID && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
