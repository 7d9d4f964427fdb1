package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// statsDays сколько последних дней с выручкой попадает в сводку
const statsDays = 7

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	location    *time.Location
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		location:    location,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Видеть бронирование могут владелец, назначенный тренер и администратор
func (s *Service) GetByID(ctx context.Context, id string, actor domain.User) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !canView(booking, actor) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование
// Отменить может владелец или администратор
// Повторная отмена и отмена отклонённого бронирования ничего не меняют
func (s *Service) Cancel(ctx context.Context, id string, actor domain.User) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", id, actor.ID)

	var (
		result  *domain.Booking
		changed bool
	)
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := s.getBooking(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		// 2. Проверяем права
		if booking.UserID != actor.ID && !actor.IsAdmin() {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", actor.ID, id)
			return ErrAccessDenied
		}

		// 3. Терминальные статусы не меняем
		if !booking.CanBeCancelled() {
			s.logger.Info("Cancel: booking id=%s already %s, nothing to do", id, booking.Status)
			result = booking
			return nil
		}

		// 4. Отменяем и перечитываем
		result, err = s.updateStatus(txCtx, "Cancel", id, domain.StatusCancelled)
		changed = err == nil
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.RecordStatusTransition(string(domain.StatusCancelled))
		s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	}
	return models.FromDomainBooking(result), nil
}

// Respond применяет решение тренера к бронированию в статусе pending_approval
// Решение может принять назначенный тренер или администратор
func (s *Service) Respond(ctx context.Context, id string, decision string, actor domain.User) (*models.BookingResponse, error) {
	s.logger.Info("Respond: booking id=%s decision=%s by user=%s", id, decision, actor.ID)

	status, err := models.ToDomainDecision(decision)
	if err != nil {
		s.logger.Warn("Respond: invalid decision=%s for booking id=%s", decision, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		booking, err := s.getBooking(txCtx, "Respond", id)
		if err != nil {
			return err
		}

		// 2. Проверяем права
		if !actor.IsAdmin() && !(booking.HasCoach() && actor.IsCoach(*booking.CoachID)) {
			s.logger.Warn("Respond: access denied for user=%s to booking id=%s", actor.ID, id)
			return ErrAccessDenied
		}

		// 3. Проверяем переход статуса
		if !booking.CanBeResponded() {
			s.logger.Warn("Respond: booking id=%s has status=%s, decision not allowed", id, booking.Status)
			return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, booking.Status)
		}

		// 4. Применяем решение
		result, err = s.updateStatus(txCtx, "Respond", id, status)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordStatusTransition(string(status))
	s.logger.Info("Respond: booking id=%s is now %s", id, status)
	return models.FromDomainBooking(result), nil
}

// ListForUser история бронирований пользователя, сначала новые
func (s *Service) ListForUser(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	return s.list(ctx, "ListForUser", domain.BookingsFilter{
		UserID:          &userID,
		IncludeInactive: true,
	})
}

// ListForCoach активные бронирования тренера, сначала ранние
func (s *Service) ListForCoach(ctx context.Context, coachID string) (*models.BookingListResponse, error) {
	if coachID == "" {
		return nil, fmt.Errorf("%w: coachId is required", ErrInvalidInput)
	}
	return s.list(ctx, "ListForCoach", domain.BookingsFilter{
		CoachID: &coachID,
		SortAsc: true,
	})
}

// ListForDate активные бронирования одного календарного дня, сначала ранние
func (s *Service) ListForDate(ctx context.Context, req *models.DateViewRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	from, to := domain.DayBounds(req.Date, s.location)
	return s.list(ctx, "ListForDate", domain.BookingsFilter{
		CourtID: req.CourtID,
		From:    &from,
		To:      &to,
		SortAsc: true,
	})
}

// ListAll все бронирования, сначала новые
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	return s.list(ctx, "ListAll", domain.BookingsFilter{IncludeInactive: true})
}

// Stats сводка по подтверждённым бронированиям
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{SortAsc: true})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return buildStats(bookings, s.location), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, op, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: failed to update booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return s.getBooking(ctx, op, id)
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return models.FromDomainBookingList(bookings), nil
}

// canView владелец, назначенный тренер или администратор
func canView(b *domain.Booking, actor domain.User) bool {
	if actor.IsAdmin() || b.UserID == actor.ID {
		return true
	}
	return b.HasCoach() && actor.IsCoach(*b.CoachID)
}

// buildStats считает выручку только по подтверждённым бронированиям
// Выручка по дням группируется по дате начала слота, в сводку идут последние statsDays дат
func buildStats(bookings []*domain.Booking, loc *time.Location) *models.StatsResponse {
	resp := &models.StatsResponse{RevenueByDay: []models.DailyRevenue{}}
	byDay := make(map[string]float64)

	for _, b := range bookings {
		if b.Status != domain.StatusConfirmed {
			continue
		}
		resp.ConfirmedCount++
		resp.ConfirmedRevenue += b.Price.Total
		byDay[b.Start.In(loc).Format(domain.DateFormat)] += b.Price.Total
	}

	resp.ConfirmedRevenue = domain.RoundMoney(resp.ConfirmedRevenue)
	if resp.ConfirmedCount > 0 {
		resp.AverageValue = domain.RoundMoney(resp.ConfirmedRevenue / float64(resp.ConfirmedCount))
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > statsDays {
		days = days[len(days)-statsDays:]
	}

	for _, day := range days {
		resp.RevenueByDay = append(resp.RevenueByDay, models.DailyRevenue{
			Date:    day,
			Revenue: domain.RoundMoney(byDay[day]),
		})
	}

	return resp
}
