package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс каталога кортов и тренеров
type CatalogRepository interface {
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
}

// AvailabilityChecker повторная проверка слота внутри транзакции
type AvailabilityChecker interface {
	Ensure(ctx context.Context, courtID string, slotStart time.Time, coachID *string) error
}

// PriceCalculator расчёт стоимости, которая фиксируется в бронировании
type PriceCalculator interface {
	CalculateForSlot(ctx context.Context, courtID string, slotStart time.Time, rackets, shoes int, coachID *string) (domain.PricingBreakdown, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	RecordBookingCreated(status string)
	RecordBookingConflict(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
