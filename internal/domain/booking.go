package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingApproval BookingStatus = "pending_approval"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusRejected        BookingStatus = "rejected"
	StatusCancelled       BookingStatus = "cancelled"
)

// Booking represents a court reservation for one hour slot
type Booking struct {
	ID      string
	CourtID string
	UserID  string
	CoachID *string // nil = без тренера

	Start time.Time // начало слота, кратно часу
	End   time.Time // Start + SlotDuration

	Rackets int
	Shoes   int

	// Цена фиксируется при создании и больше не пересчитывается
	Price PricingBreakdown

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its court and coach
func (b *Booking) IsActive() bool {
	return b.Status == StatusPendingApproval || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking can no longer change status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusRejected
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeResponded returns true if a coach decision can be applied
func (b *Booking) CanBeResponded() bool {
	return b.Status == StatusPendingApproval
}

// HasCoach returns true if the booking was made with a coach
func (b *Booking) HasCoach() bool {
	return b.CoachID != nil
}

// Overlaps returns true if the booking interval intersects [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return Overlaps(b.Start, b.End, start, end)
}

// Clone returns a deep copy, so stores never hand out shared pointers
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.CoachID != nil {
		coachID := *b.CoachID
		c.CoachID = &coachID
	}
	return &c
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID          *string    // Фильтр по пользователю
	CoachID         *string    // Фильтр по тренеру
	CourtID         *string    // Фильтр по корту
	From            *time.Time // Начало слота >= From
	To              *time.Time // Начало слота < To
	IncludeInactive bool       // Включать отменённые и отклонённые
	SortAsc         bool       // true = сначала ранние слоты, false = сначала новые бронирования
}
