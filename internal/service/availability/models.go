package availability

import "time"

// ConflictKind тип конфликта
type ConflictKind string

const (
	KindNone          ConflictKind = ""
	KindCoachBlackout ConflictKind = "coach_blackout"
	KindCourtBooked   ConflictKind = "court_booked"
	KindCoachBooked   ConflictKind = "coach_booked"
)

// Сообщения для пользователя
const (
	ReasonCoachBlocked     = "Coach has blocked this time slot."
	ReasonCourtBooked      = "Court is booked."
	ReasonCoachUnavailable = "Selected coach is unavailable."
)

// Request запрос на проверку доступности слота
type Request struct {
	CourtID string
	Date    time.Time
	Hour    int
	CoachID *string
}

// Result результат проверки
type Result struct {
	Available bool
	Kind      ConflictKind
	Reason    string
	SlotStart time.Time
	SlotEnd   time.Time
}

// Err возвращает ConflictError для недоступного слота и nil для свободного
func (r *Result) Err() error {
	if r.Available {
		return nil
	}
	return &ConflictError{Kind: r.Kind, Reason: r.Reason}
}
