package domain

import "math"

// PricingRules global dynamic pricing policy
type PricingRules struct {
	WeekendSurcharge   float64 // надбавка за выходной, фиксированная сумма
	PeakHourMultiplier float64 // множитель часа пик, >= 1
	PeakStartHour      int     // начало часа пик (включительно)
	PeakEndHour        int     // конец часа пик (не включительно)
	RacketPrice        float64 // цена одной ракетки
	ShoePrice          float64 // цена одной пары обуви
}

// IsPeak returns true if the hour is inside [PeakStartHour, PeakEndHour)
func (r *PricingRules) IsPeak(hour int) bool {
	return hour >= r.PeakStartHour && hour < r.PeakEndHour
}

// PricingBreakdown itemized price of one booking
type PricingBreakdown struct {
	BasePrice        float64
	WeekendSurcharge float64
	TimeMultiplier   float64
	EquipmentFee     float64
	CoachFee         float64
	Total            float64
	IsPeak           bool
	IsWeekend        bool
}

// RoundMoney округляет до 2 знаков, половина от нуля
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
