package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, caps, tariffs)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Scheduler SchedulerConfig
	Tariff    TariffConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// SchedulerConfig drives appointment generation and the monthly extras reset.
type SchedulerConfig struct {
	// Business-local timezone: all recurrence arithmetic happens here.
	TimeZone string `envconfig:"SCHEDULER_TIMEZONE" default:"America/Sao_Paulo"`
	// Generation unrolls occurrences through the end of now.Year()+HorizonYears.
	HorizonYears int `envconfig:"SCHEDULER_HORIZON_YEARS" default:"0"`
	// Safety valve against non-advancing recurrence rules.
	GenerationCap int `envconfig:"SCHEDULER_GENERATION_CAP" default:"300"`
	// The monthly reset never runs for periods before this date.
	ResetEnforcementStart time.Time `envconfig:"SCHEDULER_RESET_ENFORCEMENT_START" default:"2025-06-01T00:00:00Z"`
}

// TariffConfig is the flat per-extra price table used by the monthly reset
// (standardized-catalog valuation, distinct from per-entry ad-hoc values).
type TariffConfig struct {
	Subscription map[string]string `envconfig:"TARIFF_SUBSCRIPTION" default:"pernoite:50,adestrador:100,hidratacao:40,dias_extras:35"`
	Daycare      map[string]string `envconfig:"TARIFF_DAYCARE" default:"pernoite:50,banho_tosa:80,so_banho:45,adestrador:100,hidratacao:40,dias_extras:35"`
	Hotel        map[string]string `envconfig:"TARIFF_HOTEL" default:"pernoite:60,banho_tosa:80,so_banho:45,adestrador:100,hidratacao:40,dias_extras:45"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Scheduler: SchedulerConfig{
			TimeZone:              "America/Sao_Paulo",
			HorizonYears:          0,
			GenerationCap:         300,
			ResetEnforcementStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Tariff: TariffConfig{
			Subscription: map[string]string{"pernoite": "50"},
			Daycare:      map[string]string{"pernoite": "50"},
			Hotel:        map[string]string{"pernoite": "60"},
		},
	}
}
