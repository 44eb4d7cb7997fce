package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingConfig = errors.New("missing required configuration")

// MaxDashboardRows is the hard ceiling for DASHBOARD_MAX_ROWS.
const MaxDashboardRows = 2000

type Config struct {
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Session   SessionConfig
	Dashboard DashboardConfig
	Ingest    IngestConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// MigrationsDir is applied on startup when set.
	MigrationsDir string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName    string
	CookieSecure  bool
	PersistentTTL time.Duration
	TTL           time.Duration
}

type DashboardConfig struct {
	Locale   string
	TimeZone string
	MaxRows  int
	// Zero weights keep the built-in risk policy.
	FatigueWeight  float64
	SpeedingWeight float64
	PanicWeight    float64
}

type IngestConfig struct {
	// APIKey, when set, is required in the X-API-Key header of ingestion calls.
	APIKey string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Postgres: PostgresConfig{
			DSN:             getEnv("POSTGRES_DSN", ""),
			MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvAsDuration("POSTGRES_CONN_MAX_LIFETIME", 30*time.Minute),
			MigrationsDir:   getEnv("MIGRATIONS_DIR", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "fleet_session"),
			CookieSecure:  getEnvAsBool("SESSION_COOKIE_SECURE", false),
			PersistentTTL: getEnvAsDuration("SESSION_PERSISTENT_TTL", 720*time.Hour),
			TTL:           getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		},
		Dashboard: DashboardConfig{
			Locale:         getEnv("DASHBOARD_LOCALE", "en"),
			TimeZone:       getEnv("DASHBOARD_TIMEZONE", "UTC"),
			MaxRows:        getEnvAsInt("DASHBOARD_MAX_ROWS", MaxDashboardRows),
			FatigueWeight:  getEnvAsFloat("RISK_FATIGUE_WEIGHT", 0),
			SpeedingWeight: getEnvAsFloat("RISK_SPEEDING_WEIGHT", 0),
			PanicWeight:    getEnvAsFloat("RISK_PANIC_WEIGHT", 0),
		},
		Ingest: IngestConfig{
			APIKey: getEnv("INGEST_API_KEY", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("%w: POSTGRES_DSN is not set", ErrMissingConfig)
	}

	if cfg.Dashboard.MaxRows <= 0 || cfg.Dashboard.MaxRows > MaxDashboardRows {
		cfg.Dashboard.MaxRows = MaxDashboardRows
	}

	if _, err := time.LoadLocation(cfg.Dashboard.TimeZone); err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE %q: %w", cfg.Dashboard.TimeZone, err)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or console", cfg.Log.Format)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
