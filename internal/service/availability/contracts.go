package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// BlackoutRepository интерфейс хранилища закрытых тренерами слотов
type BlackoutRepository interface {
	IsSlotBlocked(ctx context.Context, coachID string, slotStart time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
