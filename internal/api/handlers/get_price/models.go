package get_price

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
)

// ToServiceRequest собирает запрос расчёта из URL и query параметров
func ToServiceRequest(r *http.Request, courtID string) (pricing.Request, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return pricing.Request{}, err
	}

	hour, err := handlers.QueryInt(r, "hour", -1)
	if err != nil {
		return pricing.Request{}, err
	}

	rackets, err := handlers.QueryInt(r, "rackets", 0)
	if err != nil {
		return pricing.Request{}, err
	}

	shoes, err := handlers.QueryInt(r, "shoes", 0)
	if err != nil {
		return pricing.Request{}, err
	}

	return pricing.Request{
		CourtID: courtID,
		Date:    date,
		Hour:    hour,
		Rackets: rackets,
		Shoes:   shoes,
		CoachID: handlers.QueryString(r, "coachId"),
	}, nil
}
