package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
)

// Service калькулятор стоимости бронирования
type Service struct {
	catalog  CatalogRepository
	rules    RulesRepository
	location *time.Location
	metrics  Metrics
	logger   Logger
}

// NewService создает новый экземпляр калькулятора
func NewService(
	catalog CatalogRepository,
	rules RulesRepository,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		catalog:  catalog,
		rules:    rules,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Location временная зона слотов
func (s *Service) Location() *time.Location {
	return s.location
}

// Calculate рассчитывает стоимость слота
// Неизвестный корт или тренер дают нулевую составляющую, а не ошибку
func (s *Service) Calculate(ctx context.Context, req Request) (domain.PricingBreakdown, error) {
	if err := validateRequest(req); err != nil {
		return domain.PricingBreakdown{}, err
	}

	slotStart, ok := domain.LocalSlotStart(req.Date, req.Hour, s.location)
	if !ok {
		return domain.PricingBreakdown{}, fmt.Errorf("%w: hour %d does not exist on %s in %s",
			ErrInvalidInput, req.Hour, req.Date.Format(domain.DateFormat), s.location)
	}

	return s.CalculateForSlot(ctx, req.CourtID, slotStart, req.Rackets, req.Shoes, req.CoachID)
}

// CalculateForSlot рассчитывает стоимость по точному началу слота
func (s *Service) CalculateForSlot(
	ctx context.Context,
	courtID string,
	slotStart time.Time,
	rackets, shoes int,
	coachID *string,
) (domain.PricingBreakdown, error) {
	// 1. Текущие правила
	rules, err := s.rules.Get(ctx)
	if err != nil {
		s.logger.Error("Calculate: failed to get pricing rules: %v", err)
		return domain.PricingBreakdown{}, fmt.Errorf("%w: Calculate - rules error: %v", ErrInternal, err)
	}

	// 2. Базовая цена корта
	basePrice := 0.0
	court, err := s.catalog.GetCourt(ctx, courtID)
	switch {
	case err == nil:
		basePrice = court.BasePrice
	case errors.Is(err, catalogRepo.ErrCourtNotFound):
		s.logger.Warn("Calculate: court id=%s not found, base price is 0", courtID)
	default:
		s.logger.Error("Calculate: failed to get court id=%s: %v", courtID, err)
		return domain.PricingBreakdown{}, fmt.Errorf("%w: Calculate - catalog error: %v", ErrInternal, err)
	}

	// 3. Ставка тренера
	coachRate := 0.0
	if coachID != nil && *coachID != "" {
		coach, err := s.catalog.GetCoach(ctx, *coachID)
		switch {
		case err == nil:
			coachRate = coach.HourlyRate
		case errors.Is(err, catalogRepo.ErrCoachNotFound):
			s.logger.Warn("Calculate: coach id=%s not found, coach fee is 0", *coachID)
		default:
			s.logger.Error("Calculate: failed to get coach id=%s: %v", *coachID, err)
			return domain.PricingBreakdown{}, fmt.Errorf("%w: Calculate - catalog error: %v", ErrInternal, err)
		}
	}

	// 4. Расчёт
	return Compute(rules, Input{
		BasePrice: basePrice,
		CoachRate: coachRate,
		SlotStart: slotStart.In(s.location),
		Rackets:   rackets,
		Shoes:     shoes,
	}), nil
}

// Quote расчёт стоимости для живой подсказки пользователю
func (s *Service) Quote(ctx context.Context, req Request) (domain.PricingBreakdown, error) {
	breakdown, err := s.Calculate(ctx, req)
	if err != nil {
		return breakdown, err
	}

	s.metrics.RecordPriceQuote(breakdown.IsPeak, breakdown.IsWeekend)
	return breakdown, nil
}

func validateRequest(req Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Hour < 0 || req.Hour >= domain.HoursInDay {
		return fmt.Errorf("%w: hour must be in [0, 23]", ErrInvalidInput)
	}
	if req.Rackets < 0 || req.Rackets > domain.MaxAddOnQuantity {
		return fmt.Errorf("%w: rackets must be in [0, %d]", ErrInvalidInput, domain.MaxAddOnQuantity)
	}
	if req.Shoes < 0 || req.Shoes > domain.MaxAddOnQuantity {
		return fmt.Errorf("%w: shoes must be in [0, %d]", ErrInvalidInput, domain.MaxAddOnQuantity)
	}
	return nil
}
