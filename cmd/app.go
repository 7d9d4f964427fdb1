package main

import (
	"context"
	"fmt"
	"time"

	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_booking"
	getAllBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getBookingsByDateHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_bookings_by_date"
	getCoachHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_coach"
	getCoachBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_coach_bookings"
	getPriceHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_price"
	getPricingRulesHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_pricing_rules"
	getStatsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user_bookings"
	listCoachesHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_coaches"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	registerCoachHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/register_coach"
	respondBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/respond_booking"
	toggleBlackoutHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/toggle_blackout"
	updatePricingRulesHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_pricing_rules"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	rulesRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/rules"
	availabilityService "github.com/m04kA/SMC-CourtBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CourtBookingService/internal/service/catalog"
	pricingService "github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
	rulesService "github.com/m04kA/SMC-CourtBookingService/internal/service/rules"
	createBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// BookingStore общий контракт in-memory и PostgreSQL хранилищ бронирований
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// TxManager интерфейс для transaction manager (используется в сервисах и usecases)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// handlerSet все HTTP обработчики сервиса
type handlerSet struct {
	listCourts         *listCourtsHandler.Handler
	listCoaches        *listCoachesHandler.Handler
	getCoach           *getCoachHandler.Handler
	registerCoach      *registerCoachHandler.Handler
	toggleBlackout     *toggleBlackoutHandler.Handler
	getPrice           *getPriceHandler.Handler
	checkAvailability  *checkAvailabilityHandler.Handler
	getAvailableSlots  *getAvailableSlotsHandler.Handler
	createBooking      *createBookingHandler.Handler
	getBooking         *getBookingHandler.Handler
	cancelBooking      *cancelBookingHandler.Handler
	respondBooking     *respondBookingHandler.Handler
	getUserBookings    *getUserBookingsHandler.Handler
	getCoachBookings   *getCoachBookingsHandler.Handler
	getBookingsByDate  *getBookingsByDateHandler.Handler
	getAllBookings     *getAllBookingsHandler.Handler
	getStats           *getStatsHandler.Handler
	getPricingRules    *getPricingRulesHandler.Handler
	updatePricingRules *updatePricingRulesHandler.Handler
}

// buildHandlers собирает репозитории каталога и правил, сервисы, use cases и обработчики
// поверх выбранного хранилища бронирований
func buildHandlers(
	cfg *config.Config,
	bookingStore BookingStore,
	txMgr TxManager,
	metricsCollector *metrics.Metrics,
	log Logger,
) (*handlerSet, error) {
	location, err := cfg.Booking.Location()
	if err != nil {
		return nil, fmt.Errorf("booking location: %w", err)
	}

	initialRules := rulesFromConfig(cfg.Pricing)
	if err := rulesService.Validate(initialRules); err != nil {
		return nil, fmt.Errorf("pricing rules: %w", err)
	}

	// Инициализируем репозитории каталога и правил из начальных данных конфигурации
	courts, coaches := catalogFromConfig(cfg.Catalog)
	catalogRepository := catalogRepo.NewRepository(courts, coaches)
	rulesRepository := rulesRepo.NewRepository(initialRules)

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(catalogRepository, rulesRepository, location, metricsCollector, log)
	availabilitySvc := availabilityService.NewService(bookingStore, catalogRepository, location, log)
	bookingSvc := bookingsService.NewService(bookingStore, txMgr, location, metricsCollector, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)
	rulesSvc := rulesService.NewService(rulesRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		catalogRepository,
		availabilitySvc,
		pricingSvc,
		txMgr,
		createBookingUC.BookingWindow{
			OpeningHour: cfg.Booking.OpeningHour,
			ClosingHour: cfg.Booking.ClosingHour,
			Location:    location,
		},
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingStore,
		catalogRepository,
		getAvailableSlotsUC.Window{
			OpeningHour: cfg.Booking.OpeningHour,
			ClosingHour: cfg.Booking.ClosingHour,
			Location:    location,
		},
		log,
	)

	return &handlerSet{
		listCourts:         listCourtsHandler.NewHandler(catalogSvc, log),
		listCoaches:        listCoachesHandler.NewHandler(catalogSvc, log),
		getCoach:           getCoachHandler.NewHandler(catalogSvc, log),
		registerCoach:      registerCoachHandler.NewHandler(catalogSvc, log),
		toggleBlackout:     toggleBlackoutHandler.NewHandler(catalogSvc, log),
		getPrice:           getPriceHandler.NewHandler(pricingSvc, log),
		checkAvailability:  checkAvailabilityHandler.NewHandler(availabilitySvc, log),
		getAvailableSlots:  getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		createBooking:      createBookingHandler.NewHandler(createBookingUseCase, log),
		getBooking:         getBookingHandler.NewHandler(bookingSvc, log),
		cancelBooking:      cancelBookingHandler.NewHandler(bookingSvc, log),
		respondBooking:     respondBookingHandler.NewHandler(bookingSvc, log),
		getUserBookings:    getUserBookingsHandler.NewHandler(bookingSvc, log),
		getCoachBookings:   getCoachBookingsHandler.NewHandler(bookingSvc, log),
		getBookingsByDate:  getBookingsByDateHandler.NewHandler(bookingSvc, log),
		getAllBookings:     getAllBookingsHandler.NewHandler(bookingSvc, log),
		getStats:           getStatsHandler.NewHandler(bookingSvc, log),
		getPricingRules:    getPricingRulesHandler.NewHandler(rulesSvc, log),
		updatePricingRules: updatePricingRulesHandler.NewHandler(rulesSvc, log),
	}, nil
}

func catalogFromConfig(cfg config.CatalogConfig) ([]domain.Court, []domain.Coach) {
	courts := make([]domain.Court, 0, len(cfg.Courts))
	for _, c := range cfg.Courts {
		courts = append(courts, domain.Court{
			ID:        c.ID,
			Name:      c.Name,
			Category:  domain.CourtCategory(c.Category),
			BasePrice: c.BasePrice,
			ImageURL:  c.ImageURL,
		})
	}

	coaches := make([]domain.Coach, 0, len(cfg.Coaches))
	for _, c := range cfg.Coaches {
		coaches = append(coaches, domain.Coach{
			ID:         c.ID,
			Name:       c.Name,
			Specialty:  c.Specialty,
			HourlyRate: c.HourlyRate,
			Bio:        c.Bio,
			Rating:     c.Rating,
			ImageURL:   c.ImageURL,
		})
	}

	return courts, coaches
}

func rulesFromConfig(cfg config.PricingConfig) domain.PricingRules {
	return domain.PricingRules{
		WeekendSurcharge:   cfg.WeekendSurcharge,
		PeakHourMultiplier: cfg.PeakHourMultiplier,
		PeakStartHour:      cfg.PeakStartHour,
		PeakEndHour:        cfg.PeakEndHour,
		RacketPrice:        cfg.RacketPrice,
		ShoePrice:          cfg.ShoePrice,
	}
}
