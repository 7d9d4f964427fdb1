package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	var (
		cfg *config.Config
		err error
	)
	if config.Exists(configPath) {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnvOnly()
	}
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtBookingService...")
	log.Info("Configuration loaded (storage=%s, timezone=%s, hours=[%d, %d))",
		cfg.Storage.Driver, cfg.Booking.Timezone, cfg.Booking.OpeningHour, cfg.Booking.ClosingHour)

	// Инициализируем метрики (если включены)
	metricsCollector := metrics.Discard()
	var exposedMetrics *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		exposedMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище бронирований и transaction manager
	var (
		bookingStore BookingStore
		txMgr        TxManager
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		wrappedDB, err := openDatabase(cfg.Database, exposedMetrics, stopMetricsCh, log)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer wrappedDB.Unwrap().Close()

		if cfg.Database.AutoMigrate {
			migrator, err := migrations.NewMigrator(wrappedDB.Unwrap(), log)
			if err != nil {
				log.Fatal("Failed to initialize migrator: %v", err)
			}
			if err := migrator.Run(context.Background()); err != nil {
				log.Fatal("Failed to apply migrations: %v", err)
			}
		}

		bookingStore = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Using PostgreSQL booking storage")

	default:
		bookingStore = bookingRepo.NewMemoryRepository()
		txMgr = txmanager.NewTransactionManager(nil)
		log.Info("Using in-memory booking storage")
	}

	// Инициализируем сервисы, use cases и handlers
	h, err := buildHandlers(cfg, bookingStore, txMgr, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}

	// Настраиваем роутер
	r := newRouter(h, routerOptions{
		Metrics:          exposedMetrics,
		MetricsPath:      cfg.Metrics.Path,
		SimulatedLatency: time.Duration(cfg.Server.SimulatedLatencyMs) * time.Millisecond,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openDatabase открывает пул соединений PostgreSQL, оборачивает его метриками
// и проверяет доступность базы
func openDatabase(cfg config.DatabaseConfig, m *metrics.Metrics, stopCh <-chan struct{}, log Logger) (*dbmetrics.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	wrapped := dbmetrics.WrapWithDefault(db, m, cfg.DBName, stopCh)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := wrapped.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)
	return wrapped, nil
}
