package domain

import "time"

// CourtCategory court surface category
type CourtCategory string

const (
	CategoryIndoor  CourtCategory = "Indoor"
	CategoryOutdoor CourtCategory = "Outdoor"
)

// Court represents a bookable court
type Court struct {
	ID        string
	Name      string
	Category  CourtCategory
	BasePrice float64 // цена за час
	ImageURL  string
}

// Coach represents a coach that can be attached to bookings
type Coach struct {
	ID         string
	Name       string
	Specialty  string
	HourlyRate float64
	Bio        string
	Rating     float64
	ImageURL   string

	// Начала слотов, которые тренер закрыл для бронирования
	BlockedSlots []time.Time
}

// IsBlocked returns true if the coach closed the slot starting at start
func (c *Coach) IsBlocked(start time.Time) bool {
	for _, s := range c.BlockedSlots {
		if s.Equal(start) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the coach
func (c *Coach) Clone() *Coach {
	if c == nil {
		return nil
	}
	cp := *c
	cp.BlockedSlots = append([]time.Time(nil), c.BlockedSlots...)
	return &cp
}
