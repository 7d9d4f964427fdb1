package pricing

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CatalogRepository интерфейс каталога кортов и тренеров
type CatalogRepository interface {
	GetCourt(ctx context.Context, id string) (*domain.Court, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
}

// RulesRepository интерфейс хранилища правил ценообразования
type RulesRepository interface {
	Get(ctx context.Context) (domain.PricingRules, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	RecordPriceQuote(isPeak, isWeekend bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
