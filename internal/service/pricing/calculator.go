package pricing

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Compute рассчитывает стоимость слота по правилам
// Функция чистая: одинаковые правила и вход дают одинаковый результат
func Compute(rules domain.PricingRules, in Input) domain.PricingBreakdown {
	// 1. Выходной и час пик определяются по началу слота в его временной зоне
	weekday := in.SlotStart.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	isPeak := rules.IsPeak(in.SlotStart.Hour())

	// 2. Надбавка за выходной прибавляется к базовой цене один раз
	surcharge := 0.0
	if isWeekend {
		surcharge = rules.WeekendSurcharge
	}
	subtotal := in.BasePrice + surcharge

	// 3. Множитель часа пик применяется к (база + надбавка)
	multiplier := 1.0
	if isPeak {
		multiplier = rules.PeakHourMultiplier
	}
	subtotal *= multiplier

	// 4. Инвентарь и тренер множителем не затрагиваются
	equipment := float64(in.Rackets)*rules.RacketPrice + float64(in.Shoes)*rules.ShoePrice

	return domain.PricingBreakdown{
		BasePrice:        in.BasePrice,
		WeekendSurcharge: surcharge,
		TimeMultiplier:   multiplier,
		EquipmentFee:     domain.RoundMoney(equipment),
		CoachFee:         in.CoachRate,
		Total:            domain.RoundMoney(subtotal + equipment + in.CoachRate),
		IsPeak:           isPeak,
		IsWeekend:        isWeekend,
	}
}
