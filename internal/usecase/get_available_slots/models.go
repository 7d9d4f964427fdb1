package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса сетки слотов на день
type Request struct {
	Date    time.Time // Дата (время игнорируется)
	CourtID *string   // Только один корт (опционально)
	CoachID *string   // Учесть занятость тренера (опционально)
}

// Response сетка слотов на день
type Response struct {
	Date    time.Time
	CoachID *string
	Courts  []CourtSlots
}

// CourtSlots слоты одного корта, по возрастанию часа
type CourtSlots struct {
	Court domain.Court
	Slots []domain.DaySlot
}

// Window часы работы кортов [OpeningHour, ClosingHour)
type Window struct {
	OpeningHour int
	ClosingHour int
	Location    *time.Location
}
