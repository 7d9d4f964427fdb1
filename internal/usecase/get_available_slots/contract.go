package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveInRange получает активные бронирования, пересекающие [start, end)
	GetActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога кортов и тренеров
type CatalogRepository interface {
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
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
