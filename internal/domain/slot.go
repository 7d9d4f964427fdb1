package domain

import "time"

// SlotState состояние слота в сетке дня
type SlotState string

const (
	SlotFree    SlotState = "free"
	SlotBooked  SlotState = "booked"
	SlotPast    SlotState = "past"
	SlotBlocked SlotState = "coach_unavailable"
)

// DaySlot represents one court-hour cell of the day grid
type DaySlot struct {
	CourtID string
	Start   time.Time
	Hour    int
	State   SlotState
	Reason  string
}

// IsFree returns true if the slot can be booked
func (s *DaySlot) IsFree() bool {
	return s.State == SlotFree
}

// SlotStart возвращает начало слота для даты и часа в заданной временной зоне
func SlotStart(date time.Time, hour int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, loc)
}

// LocalSlotStart как SlotStart, но ok=false, если такого часа в зоне нет
// (при переходе на летнее время time.Date сдвигает несуществующий час)
func LocalSlotStart(date time.Time, hour int, loc *time.Location) (time.Time, bool) {
	start := SlotStart(date, hour, loc)
	return start, start.Hour() == hour
}

// IsHourAligned returns true if t starts exactly on an hour boundary
func IsHourAligned(t time.Time) bool {
	return t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// Overlaps проверка пересечения полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DayBounds возвращает [начало дня, начало следующего дня) для даты в зоне loc
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := SlotStart(date, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// IsSlotPast слот считается прошедшим, когда истекла его последняя минута
func IsSlotPast(start, now time.Time) bool {
	return start.Add(SlotDuration - time.Minute).Before(now)
}
