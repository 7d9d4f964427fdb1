package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Service проверка доступности слота
type Service struct {
	bookings  BookingRepository
	blackouts BlackoutRepository
	location  *time.Location
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	bookings BookingRepository,
	blackouts BlackoutRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookings:  bookings,
		blackouts: blackouts,
		location:  location,
		logger:    logger,
	}
}

// Check проверяет доступность слота по дате и часу
func (s *Service) Check(ctx context.Context, req Request) (*Result, error) {
	if req.CourtID == "" {
		return nil, fmt.Errorf("%w: courtId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Hour < 0 || req.Hour >= domain.HoursInDay {
		return nil, fmt.Errorf("%w: hour must be in [0, 23]", ErrInvalidInput)
	}

	slotStart, ok := domain.LocalSlotStart(req.Date, req.Hour, s.location)
	if !ok {
		return nil, fmt.Errorf("%w: hour %d does not exist on %s in %s",
			ErrInvalidInput, req.Hour, req.Date.Format(domain.DateFormat), s.location)
	}

	return s.CheckSlot(ctx, req.CourtID, slotStart, req.CoachID)
}

// CheckSlot проверяет доступность слота по точному началу
// Порядок проверок: закрытый тренером слот, затем пересечения с активными бронированиями.
// Если заняты и корт, и тренер, сообщается о корте
func (s *Service) CheckSlot(ctx context.Context, courtID string, slotStart time.Time, coachID *string) (*Result, error) {
	slotEnd := slotStart.Add(domain.SlotDuration)
	result := &Result{Available: true, SlotStart: slotStart, SlotEnd: slotEnd}

	hasCoach := coachID != nil && *coachID != ""

	// 1. Тренер закрыл слот
	if hasCoach {
		blocked, err := s.blackouts.IsSlotBlocked(ctx, *coachID, slotStart)
		if err != nil {
			s.logger.Error("CheckSlot: failed to check blackout coach=%s: %v", *coachID, err)
			return nil, fmt.Errorf("%w: CheckSlot - blackout error: %v", ErrInternal, err)
		}
		if blocked {
			return s.conflict(result, KindCoachBlackout, ReasonCoachBlocked), nil
		}
	}

	// 2. Пересечения с активными бронированиями (внутри транзакции строки блокируются)
	active, err := s.bookings.GetActiveInRange(ctx, slotStart, slotEnd)
	if err != nil {
		s.logger.Error("CheckSlot: failed to get active bookings: %v", err)
		return nil, fmt.Errorf("%w: CheckSlot - repository error: %v", ErrInternal, err)
	}

	coachBusy := false
	for _, b := range active {
		if !b.IsActive() || !b.Overlaps(slotStart, slotEnd) {
			continue
		}
		if b.CourtID == courtID {
			return s.conflict(result, KindCourtBooked, ReasonCourtBooked), nil
		}
		if hasCoach && b.CoachID != nil && *b.CoachID == *coachID {
			coachBusy = true
		}
	}

	if coachBusy {
		return s.conflict(result, KindCoachBooked, ReasonCoachUnavailable), nil
	}

	// 3. Слот свободен
	return result, nil
}

// Ensure возвращает *ConflictError, если слот недоступен
func (s *Service) Ensure(ctx context.Context, courtID string, slotStart time.Time, coachID *string) error {
	result, err := s.CheckSlot(ctx, courtID, slotStart, coachID)
	if err != nil {
		return err
	}
	return result.Err()
}

func (s *Service) conflict(result *Result, kind ConflictKind, reason string) *Result {
	result.Available = false
	result.Kind = kind
	result.Reason = reason
	return result
}
