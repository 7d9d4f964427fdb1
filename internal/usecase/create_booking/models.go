package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string     // ID пользователя
	CourtID   string     // ID корта
	SlotStart time.Time  // Начало слота, кратно часу
	SlotEnd   *time.Time // Конец слота (опционально, должен быть SlotStart + 1ч)
	Rackets   int        // Ракетки в аренду, 0..4
	Shoes     int        // Обувь в аренду, 0..4
	CoachID   *string    // ID тренера (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

// BookingWindow часы работы кортов [OpeningHour, ClosingHour)
type BookingWindow struct {
	OpeningHour int
	ClosingHour int
	Location    *time.Location
}
