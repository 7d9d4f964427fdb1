package check_availability

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
)

type AvailabilityService interface {
	Check(ctx context.Context, req availability.Request) (*availability.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
