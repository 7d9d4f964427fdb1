package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, например COURT_SERVER_HTTP_PORT
const EnvPrefix = "COURT"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config конфигурация сервиса
// Порядок загрузки: значения по умолчанию -> config.toml -> .env -> переменные окружения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Pricing  PricingConfig  `toml:"pricing"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

type ServerConfig struct {
	HTTPPort           int `toml:"http_port" split_words:"true"`
	ReadTimeout        int `toml:"read_timeout" split_words:"true"`     // секунды
	WriteTimeout       int `toml:"write_timeout" split_words:"true"`    // секунды
	IdleTimeout        int `toml:"idle_timeout" split_words:"true"`     // секунды
	ShutdownTimeout    int `toml:"shutdown_timeout" split_words:"true"` // секунды
	SimulatedLatencyMs int `toml:"simulated_latency_ms" split_words:"true"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type BookingConfig struct {
	Timezone    string `toml:"timezone"`
	OpeningHour int    `toml:"opening_hour" split_words:"true"`
	ClosingHour int    `toml:"closing_hour" split_words:"true"`
}

// Location временная зона слотов
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// PricingConfig начальные правила ценообразования
type PricingConfig struct {
	WeekendSurcharge   float64 `toml:"weekend_surcharge" split_words:"true"`
	PeakHourMultiplier float64 `toml:"peak_hour_multiplier" split_words:"true"`
	PeakStartHour      int     `toml:"peak_start_hour" split_words:"true"`
	PeakEndHour        int     `toml:"peak_end_hour" split_words:"true"`
	RacketPrice        float64 `toml:"racket_price" split_words:"true"`
	ShoePrice          float64 `toml:"shoe_price" split_words:"true"`
}

// CatalogConfig начальный каталог кортов и тренеров
type CatalogConfig struct {
	Courts  []CourtConfig `toml:"courts" ignored:"true"`
	Coaches []CoachConfig `toml:"coaches" ignored:"true"`
}

type CourtConfig struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	Category  string  `toml:"category"`
	BasePrice float64 `toml:"base_price"`
	ImageURL  string  `toml:"image_url"`
}

type CoachConfig struct {
	ID         string  `toml:"id"`
	Name       string  `toml:"name"`
	Specialty  string  `toml:"specialty"`
	HourlyRate float64 `toml:"hourly_rate"`
	Bio        string  `toml:"bio"`
	Rating     float64 `toml:"rating"`
	ImageURL   string  `toml:"image_url"`
}

// Load загружает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	// 1. TOML файл
	// Декодер переиспользует элементы существующих срезов, поэтому начальный каталог
	// откладываем и возвращаем, только если файл не задаёт свой
	seed := cfg.Catalog
	cfg.Catalog = CatalogConfig{}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if !md.IsDefined("catalog", "courts") {
		cfg.Catalog.Courts = seed.Courts
	}
	if !md.IsDefined("catalog", "coaches") {
		cfg.Catalog.Coaches = seed.Coaches
	}

	// 2. .env файл (необязательный)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	// 3. Переменные окружения перекрывают файл
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет загруженные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Server.SimulatedLatencyMs < 0 {
		return fmt.Errorf("config: server.simulated_latency_ms must be >= 0")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("config: database.host and database.dbname are required for postgres storage")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("config: invalid booking.timezone %q: %w", c.Booking.Timezone, err)
	}
	if c.Booking.OpeningHour < 0 || c.Booking.ClosingHour > 24 || c.Booking.OpeningHour >= c.Booking.ClosingHour {
		return fmt.Errorf("config: invalid booking hours [%d, %d)", c.Booking.OpeningHour, c.Booking.ClosingHour)
	}

	seen := make(map[string]struct{}, len(c.Catalog.Courts))
	for _, court := range c.Catalog.Courts {
		if court.ID == "" {
			return fmt.Errorf("config: catalog court without id")
		}
		if _, ok := seen[court.ID]; ok {
			return fmt.Errorf("config: duplicate court id %q", court.ID)
		}
		seen[court.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Catalog.Coaches))
	for _, coach := range c.Catalog.Coaches {
		if coach.ID == "" {
			return fmt.Errorf("config: catalog coach without id")
		}
		if _, ok := seen[coach.ID]; ok {
			return fmt.Errorf("config: duplicate coach id %q", coach.ID)
		}
		seen[coach.ID] = struct{}{}
	}

	return nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "court-booking-service",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Booking: BookingConfig{
			Timezone:    "UTC",
			OpeningHour: 8,
			ClosingHour: 22,
		},
		Pricing: PricingConfig{
			WeekendSurcharge:   5,
			PeakHourMultiplier: 1.5,
			PeakStartHour:      18,
			PeakEndHour:        21,
			RacketPrice:        5,
			ShoePrice:          3,
		},
		Catalog: DefaultCatalog(),
	}
}

// DefaultCatalog демо-каталог: три корта и два тренера
func DefaultCatalog() CatalogConfig {
	return CatalogConfig{
		Courts: []CourtConfig{
			{ID: "c1", Name: "Court A (Center)", Category: "Indoor", BasePrice: 20},
			{ID: "c2", Name: "Court B (East)", Category: "Indoor", BasePrice: 20},
			{ID: "c3", Name: "Court C (Outdoor)", Category: "Outdoor", BasePrice: 15},
		},
		Coaches: []CoachConfig{
			{
				ID:         "coach1",
				Name:       "John Doe",
				Specialty:  "Badminton Pro",
				HourlyRate: 25,
				Bio:        "Former national champion with 10 years of coaching experience.",
				Rating:     4.9,
			},
			{
				ID:         "coach2",
				Name:       "Sarah Smith",
				Specialty:  "Fitness & Agility",
				HourlyRate: 20,
				Bio:        "Certified strength and conditioning specialist focusing on court agility.",
				Rating:     4.7,
			},
		},
	}
}

// LoadFromEnvOnly используется, когда файл конфигурации отсутствует (например, в контейнере)
func LoadFromEnvOnly() (*Config, error) {
	cfg := Default()
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exists проверяет наличие файла конфигурации
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
