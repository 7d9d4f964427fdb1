package models

import "github.com/m04kA/SMC-CourtBookingService/internal/domain"

// UpdateRulesRequest запрос на частичное обновление правил
// Обновляются только указанные (not nil) поля
type UpdateRulesRequest struct {
	WeekendSurcharge   *float64 `json:"weekendSurcharge,omitempty"`
	PeakHourMultiplier *float64 `json:"peakHourMultiplier,omitempty"`
	PeakStartHour      *int     `json:"peakStartHour,omitempty"`
	PeakEndHour        *int     `json:"peakEndHour,omitempty"`
	RacketPrice        *float64 `json:"racketPrice,omitempty"`
	ShoePrice          *float64 `json:"shoePrice,omitempty"`
}

// IsEmpty returns true if no field is set
func (r *UpdateRulesRequest) IsEmpty() bool {
	return r.WeekendSurcharge == nil && r.PeakHourMultiplier == nil &&
		r.PeakStartHour == nil && r.PeakEndHour == nil &&
		r.RacketPrice == nil && r.ShoePrice == nil
}

// ApplyToRules применяет обновления к правилам
func (r *UpdateRulesRequest) ApplyToRules(rules *domain.PricingRules) {
	if r.WeekendSurcharge != nil {
		rules.WeekendSurcharge = *r.WeekendSurcharge
	}
	if r.PeakHourMultiplier != nil {
		rules.PeakHourMultiplier = *r.PeakHourMultiplier
	}
	if r.PeakStartHour != nil {
		rules.PeakStartHour = *r.PeakStartHour
	}
	if r.PeakEndHour != nil {
		rules.PeakEndHour = *r.PeakEndHour
	}
	if r.RacketPrice != nil {
		rules.RacketPrice = *r.RacketPrice
	}
	if r.ShoePrice != nil {
		rules.ShoePrice = *r.ShoePrice
	}
}

// RulesResponse ответ с правилами ценообразования
type RulesResponse struct {
	WeekendSurcharge   float64 `json:"weekendSurcharge"`
	PeakHourMultiplier float64 `json:"peakHourMultiplier"`
	PeakStartHour      int     `json:"peakStartHour"`
	PeakEndHour        int     `json:"peakEndHour"`
	RacketPrice        float64 `json:"racketPrice"`
	ShoePrice          float64 `json:"shoePrice"`
}

// FromDomainRules конвертирует domain модель в DTO
func FromDomainRules(r domain.PricingRules) *RulesResponse {
	return &RulesResponse{
		WeekendSurcharge:   r.WeekendSurcharge,
		PeakHourMultiplier: r.PeakHourMultiplier,
		PeakStartHour:      r.PeakStartHour,
		PeakEndHour:        r.PeakEndHour,
		RacketPrice:        r.RacketPrice,
		ShoePrice:          r.ShoePrice,
	}
}
