package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// MemoryRepository in-memory хранилище бронирований
// Наружу всегда отдаются копии, поэтому зафиксированная цена не может измениться извне
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	now      func() time.Time
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[string]*domain.Booking),
		now:      time.Now,
	}
}

// Create сохраняет новое бронирование
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return nil, ErrAlreadyExists
	}

	stored := booking.Clone()
	now := r.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.bookings[stored.ID] = stored

	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.Clone(), nil
}

// List возвращает бронирования по фильтру
func (r *MemoryRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if matches(b, filter) {
			result = append(result, b.Clone())
		}
	}

	sortBookings(result, filter.SortAsc)
	return result, nil
}

// GetActiveInRange возвращает активные бронирования, пересекающие [start, end)
func (r *MemoryRepository) GetActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.IsActive() && b.Overlaps(start, end) {
			result = append(result, b.Clone())
		}
	}

	sortBookings(result, true)
	return result, nil
}

// UpdateStatus обновляет статус бронирования
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if !isKnownStatus(status) {
		return ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	b.Status = status
	b.UpdatedAt = r.now().UTC()
	return nil
}

func matches(b *domain.Booking, f domain.BookingsFilter) bool {
	if !f.IncludeInactive && !b.IsActive() {
		return false
	}
	if f.UserID != nil && b.UserID != *f.UserID {
		return false
	}
	if f.CourtID != nil && b.CourtID != *f.CourtID {
		return false
	}
	if f.CoachID != nil && (b.CoachID == nil || *b.CoachID != *f.CoachID) {
		return false
	}
	if f.From != nil && b.Start.Before(*f.From) {
		return false
	}
	if f.To != nil && !b.Start.Before(*f.To) {
		return false
	}
	return true
}

// sortBookings сортирует по началу слота, при равенстве по времени создания
func sortBookings(list []*domain.Booking, asc bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.Start.Equal(b.Start) {
			if asc {
				return a.Start.Before(b.Start)
			}
			return a.Start.After(b.Start)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if asc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func isKnownStatus(status domain.BookingStatus) bool {
	for _, s := range domain.AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}
