package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Repository in-memory каталог кортов и тренеров
// Закрытые тренером слоты хранятся как множество по Unix-времени начала слота
type Repository struct {
	mu        sync.RWMutex
	courts    map[string]*domain.Court
	coaches   map[string]*domain.Coach
	blackouts map[string]map[int64]struct{}
}

// NewRepository создает каталог с начальными данными
func NewRepository(courts []domain.Court, coaches []domain.Coach) *Repository {
	r := &Repository{
		courts:    make(map[string]*domain.Court, len(courts)),
		coaches:   make(map[string]*domain.Coach, len(coaches)),
		blackouts: make(map[string]map[int64]struct{}, len(coaches)),
	}

	for i := range courts {
		c := courts[i]
		r.courts[c.ID] = &c
	}
	for i := range coaches {
		c := coaches[i].Clone()
		r.blackouts[c.ID] = make(map[int64]struct{}, len(c.BlockedSlots))
		for _, s := range c.BlockedSlots {
			r.blackouts[c.ID][s.Unix()] = struct{}{}
		}
		c.BlockedSlots = nil
		r.coaches[c.ID] = c
	}

	return r
}

// GetCourt получает корт по ID
func (r *Repository) GetCourt(ctx context.Context, id string) (*domain.Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courts[id]
	if !ok {
		return nil, ErrCourtNotFound
	}
	cp := *c
	return &cp, nil
}

// ListCourts возвращает все корты, отсортированные по ID
func (r *Repository) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Court, 0, len(r.courts))
	for _, c := range r.courts {
		cp := *c
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetCoach получает тренера по ID вместе с закрытыми слотами
func (r *Repository) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.coaches[id]
	if !ok {
		return nil, ErrCoachNotFound
	}
	return r.coachWithBlackouts(c), nil
}

// ListCoaches возвращает всех тренеров, отсортированных по ID
func (r *Repository) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Coach, 0, len(r.coaches))
	for _, c := range r.coaches {
		result = append(result, r.coachWithBlackouts(c))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// CreateCoach регистрирует нового тренера
func (r *Repository) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coaches[coach.ID]; ok {
		return nil, ErrAlreadyExists
	}

	stored := coach.Clone()
	stored.BlockedSlots = nil
	r.coaches[stored.ID] = stored
	r.blackouts[stored.ID] = make(map[int64]struct{})

	return r.coachWithBlackouts(stored), nil
}

// IsSlotBlocked проверяет, закрыл ли тренер слот
// Для неизвестного тренера возвращает false
func (r *Repository) IsSlotBlocked(ctx context.Context, coachID string, slotStart time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, blocked := r.blackouts[coachID][slotStart.Unix()]
	return blocked, nil
}

// ToggleBlackout закрывает слот, если он открыт, и открывает, если закрыт
// Возвращает новое состояние: true = слот закрыт
func (r *Repository) ToggleBlackout(ctx context.Context, coachID string, slotStart time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.blackouts[coachID]
	if !ok {
		return false, ErrCoachNotFound
	}

	key := slotStart.Unix()
	if _, blocked := set[key]; blocked {
		delete(set, key)
		return false, nil
	}
	set[key] = struct{}{}
	return true, nil
}

func (r *Repository) coachWithBlackouts(c *domain.Coach) *domain.Coach {
	cp := c.Clone()
	set := r.blackouts[c.ID]
	cp.BlockedSlots = make([]time.Time, 0, len(set))
	for unix := range set {
		cp.BlockedSlots = append(cp.BlockedSlots, time.Unix(unix, 0).UTC())
	}
	sort.Slice(cp.BlockedSlots, func(i, j int) bool { return cp.BlockedSlots[i].Before(cp.BlockedSlots[j]) })
	return cp
}
