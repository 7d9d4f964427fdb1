package testutil

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// NopLogger логгер, который ничего не пишет
type NopLogger struct{}

func (NopLogger) Info(format string, v ...interface{})  {}
func (NopLogger) Warn(format string, v ...interface{})  {}
func (NopLogger) Error(format string, v ...interface{}) {}

// FixedTime провайдер времени с фиксированным значением
type FixedTime struct {
	T time.Time
}

func (f FixedTime) Now() time.Time {
	return f.T
}

// Metrics запоминает вызовы бизнес-метрик
type Metrics struct {
	mu          sync.Mutex
	Created     map[string]int
	Conflicts   map[string]int
	Transitions map[string]int
	Quotes      int
}

func NewMetrics() *Metrics {
	return &Metrics{
		Created:     make(map[string]int),
		Conflicts:   make(map[string]int),
		Transitions: make(map[string]int),
	}
}

func (m *Metrics) RecordBookingCreated(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created[status]++
}

func (m *Metrics) RecordBookingConflict(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Conflicts[kind]++
}

func (m *Metrics) RecordStatusTransition(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transitions[status]++
}

func (m *Metrics) RecordPriceQuote(isPeak, isWeekend bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Quotes++
}

// DefaultRules правила из демо-данных
func DefaultRules() domain.PricingRules {
	return domain.PricingRules{
		WeekendSurcharge:   5,
		PeakHourMultiplier: 1.5,
		PeakStartHour:      18,
		PeakEndHour:        21,
		RacketPrice:        5,
		ShoePrice:          3,
	}
}

// Courts корты из демо-данных
func Courts() []domain.Court {
	return []domain.Court{
		{ID: "c1", Name: "Center Court Alpha", Category: domain.CategoryIndoor, BasePrice: 20},
		{ID: "c2", Name: "Pro Court Beta", Category: domain.CategoryIndoor, BasePrice: 20},
		{ID: "c3", Name: "Sunny Outdoor Gamma", Category: domain.CategoryOutdoor, BasePrice: 15},
	}
}

// Coaches тренеры из демо-данных
func Coaches() []domain.Coach {
	return []domain.Coach{
		{ID: "coach1", Name: "John Doe", Specialty: "Badminton Pro", HourlyRate: 25, Rating: 4.9},
		{ID: "coach2", Name: "Sarah Smith", Specialty: "Fitness & Agility", HourlyRate: 20, Rating: 4.7},
	}
}

// Saturday суббота 14 июня 2025, полночь UTC
var Saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

// Tuesday вторник 10 июня 2025, полночь UTC
var Tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
