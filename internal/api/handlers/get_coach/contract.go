package get_coach

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetCoach(ctx context.Context, id string) (*models.CoachResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
