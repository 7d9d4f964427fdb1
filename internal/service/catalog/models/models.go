package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// RegisterCoachRequest запрос на регистрацию тренера
// Незаполненные поля получают значения по умолчанию
type RegisterCoachRequest struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Specialty  *string  `json:"specialty,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
	Bio        *string  `json:"bio,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
}

// ToDomainCoach конвертирует запрос в domain модель с подстановкой значений по умолчанию
func (r *RegisterCoachRequest) ToDomainCoach() *domain.Coach {
	coach := &domain.Coach{
		ID:         r.ID,
		Name:       r.Name,
		Specialty:  domain.DefaultCoachSpecialty,
		HourlyRate: domain.DefaultCoachHourlyRate,
		Bio:        domain.DefaultCoachBio,
		Rating:     domain.DefaultCoachRating,
	}
	if r.Specialty != nil {
		coach.Specialty = *r.Specialty
	}
	if r.HourlyRate != nil {
		coach.HourlyRate = *r.HourlyRate
	}
	if r.Bio != nil {
		coach.Bio = *r.Bio
	}
	if r.Rating != nil {
		coach.Rating = *r.Rating
	}
	if r.ImageURL != nil {
		coach.ImageURL = *r.ImageURL
	}
	return coach
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"basePrice"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// CoachResponse ответ с данными тренера
type CoachResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Specialty    string      `json:"specialty"`
	HourlyRate   float64     `json:"hourlyRate"`
	Bio          string      `json:"bio,omitempty"`
	Rating       float64     `json:"rating"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	BlockedSlots []time.Time `json:"blockedSlots"`
}

// BlackoutResponse результат переключения закрытого слота
type BlackoutResponse struct {
	CoachID   string    `json:"coachId"`
	SlotStart time.Time `json:"slotStart"`
	Blocked   bool      `json:"blocked"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Category:  string(c.Category),
		BasePrice: c.BasePrice,
		ImageURL:  c.ImageURL,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) []CourtResponse {
	result := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		if resp := FromDomainCourt(c); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromDomainCoach конвертирует domain модель в DTO
func FromDomainCoach(c *domain.Coach) *CoachResponse {
	if c == nil {
		return nil
	}
	slots := make([]time.Time, len(c.BlockedSlots))
	copy(slots, c.BlockedSlots)
	return &CoachResponse{
		ID:           c.ID,
		Name:         c.Name,
		Specialty:    c.Specialty,
		HourlyRate:   c.HourlyRate,
		Bio:          c.Bio,
		Rating:       c.Rating,
		ImageURL:     c.ImageURL,
		BlockedSlots: slots,
	}
}

// FromDomainCoachList конвертирует список domain моделей в DTO
func FromDomainCoachList(coaches []*domain.Coach) []CoachResponse {
	result := make([]CoachResponse, 0, len(coaches))
	for _, c := range coaches {
		if resp := FromDomainCoach(c); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
