package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog/models"
)

// Service сервис каталога кортов и тренеров
type Service struct {
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListCourts возвращает все корты
func (s *Service) ListCourts(ctx context.Context) ([]models.CourtResponse, error) {
	courts, err := s.catalogRepo.ListCourts(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourtList(courts), nil
}

// GetCourt получает корт по ID
func (s *Service) GetCourt(ctx context.Context, id string) (*models.CourtResponse, error) {
	court, err := s.catalogRepo.GetCourt(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetCourt: repository error for court id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCourt - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourt(court), nil
}

// ListCoaches возвращает всех тренеров
func (s *Service) ListCoaches(ctx context.Context) ([]models.CoachResponse, error) {
	coaches, err := s.catalogRepo.ListCoaches(ctx)
	if err != nil {
		s.logger.Error("ListCoaches: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCoaches - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCoachList(coaches), nil
}

// GetCoach получает тренера по ID
func (s *Service) GetCoach(ctx context.Context, id string) (*models.CoachResponse, error) {
	coach, err := s.catalogRepo.GetCoach(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			s.logger.Warn("GetCoach: coach id=%s not found", id)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("GetCoach: repository error for coach id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCoach - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCoach(coach), nil
}

// RegisterCoach регистрирует нового тренера
func (s *Service) RegisterCoach(ctx context.Context, req *models.RegisterCoachRequest) (*models.CoachResponse, error) {
	s.logger.Info("RegisterCoach: registering coach name=%s", req.Name)

	// 1. Валидация
	coach := req.ToDomainCoach()
	if coach.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if coach.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourlyRate must be >= 0", ErrInvalidInput)
	}
	if coach.Rating < 0 || coach.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be in [0, 5]", ErrInvalidInput)
	}
	if coach.ID == "" {
		coach.ID = "coach-" + uuid.NewString()
	}

	// 2. Сохраняем
	var created *domain.Coach
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.catalogRepo.CreateCoach(txCtx, coach)
		return err
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyExists) {
			s.logger.Warn("RegisterCoach: coach id=%s already exists", coach.ID)
			return nil, ErrCoachAlreadyExists
		}
		s.logger.Error("RegisterCoach: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterCoach - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCoach: coach id=%s registered", created.ID)
	return models.FromDomainCoach(created), nil
}

// ToggleBlackout закрывает или открывает слот тренера
// Существующие бронирования не затрагиваются
func (s *Service) ToggleBlackout(ctx context.Context, coachID string, slotStart time.Time) (*models.BlackoutResponse, error) {
	s.logger.Info("ToggleBlackout: coach=%s slot=%s", coachID, slotStart.Format(time.RFC3339))

	if slotStart.IsZero() || !domain.IsHourAligned(slotStart) {
		return nil, fmt.Errorf("%w: slotStart must be aligned to the hour", ErrInvalidInput)
	}

	var blocked bool
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		blocked, err = s.catalogRepo.ToggleBlackout(txCtx, coachID, slotStart)
		return err
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			s.logger.Warn("ToggleBlackout: coach id=%s not found", coachID)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("ToggleBlackout: repository error for coach id=%s: %v", coachID, err)
		return nil, fmt.Errorf("%w: ToggleBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleBlackout: coach=%s slot=%s blocked=%t", coachID, slotStart.Format(time.RFC3339), blocked)
	return &models.BlackoutResponse{
		CoachID:   coachID,
		SlotStart: slotStart,
		Blocked:   blocked,
	}, nil
}
