package pricing

import "time"

// Request запрос на расчёт стоимости слота
type Request struct {
	CourtID string
	Date    time.Time // дата слота, время суток игнорируется
	Hour    int       // час начала слота, 0..23
	Rackets int
	Shoes   int
	CoachID *string
}

// Input данные для чистого расчёта стоимости
type Input struct {
	BasePrice float64 // 0 для неизвестного корта
	CoachRate float64 // 0 без тренера или для неизвестного тренера
	SlotStart time.Time
	Rackets   int
	Shoes     int
}
