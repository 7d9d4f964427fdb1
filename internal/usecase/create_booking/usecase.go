package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
)

// conflictUniqueIndex метка метрики, когда конфликт поймал уникальный индекс БД
const conflictUniqueIndex = "unique_index"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	availability AvailabilityChecker
	pricing      PriceCalculator
	txManager    TransactionManager
	window       BookingWindow
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	availability AvailabilityChecker,
	pricing PriceCalculator,
	txManager TransactionManager,
	window BookingWindow,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		availability: availability,
		pricing:      pricing,
		txManager:    txManager,
		window:       window,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота, расчёт цены и запись выполняются под одной сериализуемой транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%s, slot=%s, coach=%s, rackets=%d, shoes=%d",
		req.UserID, req.CourtID, req.SlotStart.Format(time.RFC3339), coachLabel(req.CoachID), req.Rackets, req.Shoes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Часы работы
	if err := validateWindow(req.SlotStart, uc.window); err != nil {
		uc.logger.Warn("CreateBooking: slot outside of opening hours: %v", err)
		return nil, err
	}

	// 3. Прошедший слот
	now := uc.timeProvider.Now()
	if domain.IsSlotPast(req.SlotStart, now) {
		uc.logger.Warn("CreateBooking: slot %s is in the past", req.SlotStart.Format(time.RFC3339))
		return nil, ErrSlotInPast
	}

	// 4. Корт и тренер должны существовать
	if err := uc.ensureResources(ctx, req); err != nil {
		return nil, err
	}

	var result *domain.Booking

	// 5. Повторная проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Слот всё ещё свободен
		if err := uc.availability.Ensure(txCtx, req.CourtID, req.SlotStart, req.CoachID); err != nil {
			if errors.Is(err, availability.ErrSlotNotAvailable) {
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, err)
			}
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		// 5.2. Цена по текущим правилам, дальше она не меняется
		price, err := uc.pricing.CalculateForSlot(txCtx, req.CourtID, req.SlotStart, req.Rackets, req.Shoes, req.CoachID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 5.3. С тренером бронирование ждёт подтверждения
		status := domain.StatusConfirmed
		if req.CoachID != nil {
			status = domain.StatusPendingApproval
		}

		booking := &domain.Booking{
			ID:      uuid.NewString(),
			CourtID: req.CourtID,
			UserID:  req.UserID,
			CoachID: req.CoachID,
			Start:   req.SlotStart.UTC(),
			End:     req.SlotStart.Add(domain.SlotDuration).UTC(),
			Rackets: req.Rackets,
			Shoes:   req.Shoes,
			Price:   price,
			Status:  status,
		}

		// 5.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.RecordBookingConflict(conflictKind(err))
			uc.logger.Warn("CreateBooking: slot not available: court=%s, slot=%s: %v",
				req.CourtID, req.SlotStart.Format(time.RFC3339), err)
		}
		return nil, err
	}

	uc.metrics.RecordBookingCreated(string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s, total=%.2f",
		result.ID, result.Status, result.Price.Total)

	return &Response{Booking: result}, nil
}

// ensureResources проверяет, что корт и тренер есть в каталоге
func (uc *UseCase) ensureResources(ctx context.Context, req *Request) error {
	if _, err := uc.catalogRepo.GetCourt(ctx, req.CourtID); err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", req.CourtID)
			return ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if req.CoachID == nil {
		return nil
	}

	if _, err := uc.catalogRepo.GetCoach(ctx, *req.CoachID); err != nil {
		if errors.Is(err, catalogRepo.ErrCoachNotFound) {
			uc.logger.Warn("CreateBooking: coach id=%s not found", *req.CoachID)
			return ErrCoachNotFound
		}
		uc.logger.Error("CreateBooking: failed to get coach id=%s: %v", *req.CoachID, err)
		return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	return nil
}

func conflictKind(err error) string {
	var conflict *availability.ConflictError
	if errors.As(err, &conflict) {
		return string(conflict.Kind)
	}
	return conflictUniqueIndex
}

func coachLabel(coachID *string) string {
	if coachID == nil {
		return "none"
	}
	return *coachID
}
