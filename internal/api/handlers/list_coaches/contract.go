package list_coaches

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCoaches(ctx context.Context) ([]models.CoachResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
