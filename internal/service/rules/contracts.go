package rules

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// RulesRepository интерфейс хранилища правил ценообразования
type RulesRepository interface {
	Get(ctx context.Context) (domain.PricingRules, error)
	Save(ctx context.Context, rules domain.PricingRules) error
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
