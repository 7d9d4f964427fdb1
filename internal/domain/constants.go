package domain

import "time"

// Slot constants
const (
	SlotDuration     = time.Hour
	MaxAddOnQuantity = 4
	HoursInDay       = 24
)

// Default booking window
const (
	DefaultOpeningHour = 8
	DefaultClosingHour = 22
)

// Defaults for coaches registered without details
const (
	DefaultCoachSpecialty  = "General Trainer"
	DefaultCoachHourlyRate = 20.0
	DefaultCoachRating     = 5.0
	DefaultCoachBio        = "New coach at CourtConnect."
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не занимают корт и тренера
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPendingApproval,
	StatusConfirmed,
}

// AllStatuses все допустимые статусы
var AllStatuses = []BookingStatus{
	StatusPendingApproval,
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
}
