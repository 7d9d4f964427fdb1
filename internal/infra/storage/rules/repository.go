package rules

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Repository хранилище единственного набора правил ценообразования
type Repository struct {
	mu    sync.RWMutex
	rules domain.PricingRules
}

// NewRepository создает хранилище с начальными правилами
func NewRepository(initial domain.PricingRules) *Repository {
	return &Repository{rules: initial}
}

// Get возвращает копию текущих правил
func (r *Repository) Get(ctx context.Context) (domain.PricingRules, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules, nil
}

// Save заменяет правила целиком
func (r *Repository) Save(ctx context.Context, rules domain.PricingRules) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = rules
	return nil
}
