package rules

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/rules/models"
)

// multiplierScale точность множителя: в хранилище он лежит как NUMERIC(6,3)
const multiplierScale = 1000

// Service сервис правил ценообразования
type Service struct {
	rulesRepo RulesRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(rulesRepo RulesRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		rulesRepo: rulesRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Get возвращает текущие правила
func (s *Service) Get(ctx context.Context) (*models.RulesResponse, error) {
	rules, err := s.rulesRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRules(rules), nil
}

// Update частично обновляет правила
// Уже созданные бронирования не пересчитываются
func (s *Service) Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Update: updating pricing rules")

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	var result domain.PricingRules
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем текущие правила
		rules, err := s.rulesRepo.Get(txCtx)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// 2. Применяем изменения к копии и валидируем
		req.ApplyToRules(&rules)
		if err := Validate(rules); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return err
		}

		// 3. Сохраняем
		if err := s.rulesRepo.Save(txCtx, rules); err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = rules
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: pricing rules updated: surcharge=%.2f multiplier=%.2f peak=[%d,%d) racket=%.2f shoe=%.2f",
		result.WeekendSurcharge, result.PeakHourMultiplier, result.PeakStartHour, result.PeakEndHour,
		result.RacketPrice, result.ShoePrice)
	return models.FromDomainRules(result), nil
}

// Validate проверяет правила ценообразования
func Validate(r domain.PricingRules) error {
	if r.WeekendSurcharge < 0 {
		return fmt.Errorf("%w: weekendSurcharge must be >= 0", ErrInvalidInput)
	}
	if r.PeakHourMultiplier < 1 || r.PeakHourMultiplier >= multiplierScale {
		return fmt.Errorf("%w: peakHourMultiplier must be in [1, 1000)", ErrInvalidInput)
	}
	if scaled := r.PeakHourMultiplier * multiplierScale; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		return fmt.Errorf("%w: peakHourMultiplier must have at most 3 decimal places", ErrInvalidInput)
	}
	if r.PeakStartHour < 0 || r.PeakEndHour > domain.HoursInDay || r.PeakStartHour >= r.PeakEndHour {
		return fmt.Errorf("%w: peak window must satisfy 0 <= start < end <= 24", ErrInvalidInput)
	}
	if r.RacketPrice < 0 {
		return fmt.Errorf("%w: racketPrice must be >= 0", ErrInvalidInput)
	}
	if r.ShoePrice < 0 {
		return fmt.Errorf("%w: shoePrice must be >= 0", ErrInvalidInput)
	}
	return nil
}
