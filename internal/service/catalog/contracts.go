package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CatalogRepository интерфейс каталога кортов и тренеров
type CatalogRepository interface {
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	ListCourts(ctx context.Context) ([]*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
	CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	ToggleBlackout(ctx context.Context, coachID string, slotStart time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
