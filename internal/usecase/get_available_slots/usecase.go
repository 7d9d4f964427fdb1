package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения сетки слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	window       Window
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	window Window,
	logger Logger,
) *UseCase {
	if window.Location == nil {
		window.Location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s, court=%s, coach=%s",
		req.Date.Format(domain.DateFormat), label(req.CourtID), label(req.CoachID))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.CoachID != nil && *req.CoachID == "" {
		return nil, fmt.Errorf("%w: coachId must not be empty", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Корты
	courts, err := uc.courts(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	// 4. Тренер вместе с закрытыми слотами
	var coach *domain.Coach
	if req.CoachID != nil {
		coach, err = uc.catalogRepo.GetCoach(ctx, *req.CoachID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrCoachNotFound) {
				uc.logger.Warn("GetDaySlots: coach id=%s not found", *req.CoachID)
				return nil, ErrCoachNotFound
			}
			uc.logger.Error("GetDaySlots: failed to get coach id=%s: %v", *req.CoachID, err)
			return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
		}
	}

	// 5. Активные бронирования за день
	dayStart, dayEnd := domain.DayBounds(req.Date, uc.window.Location)
	active, err := uc.bookingRepo.GetActiveInRange(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Строим сетку
	resp := &Response{
		Date:    dayStart,
		CoachID: req.CoachID,
		Courts:  make([]CourtSlots, 0, len(courts)),
	}
	for _, court := range courts {
		resp.Courts = append(resp.Courts, CourtSlots{
			Court: *court,
			Slots: buildCourtSlots(*court, req.Date, uc.window, now, active, coach),
		})
	}

	uc.logger.Info("GetDaySlots: built grid for %d courts, %d active bookings on %s",
		len(courts), len(active), req.Date.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) courts(ctx context.Context, courtID *string) ([]*domain.Court, error) {
	if courtID == nil {
		courts, err := uc.catalogRepo.ListCourts(ctx)
		if err != nil {
			uc.logger.Error("GetDaySlots: failed to list courts: %v", err)
			return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
		}
		return courts, nil
	}

	court, err := uc.catalogRepo.GetCourt(ctx, *courtID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetDaySlots: court id=%s not found", *courtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get court id=%s: %v", *courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	return []*domain.Court{court}, nil
}

func label(id *string) string {
	if id == nil {
		return "all"
	}
	return *id
}
