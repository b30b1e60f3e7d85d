package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Seed    SeedConfig
	Worker  WorkerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StorageDriver selects which key/value backend holds the collections.
type StorageDriver string

const (
	DriverFile     StorageDriver = "file"
	DriverMemory   StorageDriver = "memory"
	DriverRedis    StorageDriver = "redis"
	DriverPostgres StorageDriver = "postgres"
)

// StorageConfig holds backend selection and connection values.
type StorageConfig struct {
	Driver   StorageDriver
	FilePath string
	Redis    RedisConfig
	Postgres PostgresConfig
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session and identity parameters.
type AuthConfig struct {
	GoogleClientID string
}

// SeedConfig controls sample-data bootstrapping.
type SeedConfig struct {
	Enabled bool
}

// WorkerConfig controls the stale-deliverable reporter.
type WorkerConfig struct {
	StaleCheckIntervalMinutes int
	StaleThresholdDays        int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	driver := StorageDriver(getEnv("STORAGE_DRIVER", string(DriverFile)))
	switch driver {
	case DriverFile, DriverMemory, DriverRedis, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "governance-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Storage: StorageConfig{
			Driver:   driver,
			FilePath: getEnv("STORAGE_FILE_PATH", "governance.json"),
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       redisDB,
			},
			Postgres: PostgresConfig{
				DSN:            os.Getenv("POSTGRES_DSN"),
				MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
				MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
				ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
				ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
			},
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			GoogleClientID: os.Getenv("AUTH_GOOGLE_CLIENT_ID"),
		},
		Seed: SeedConfig{
			Enabled: getEnvAsBool("SEED_SAMPLE_DATA", true),
		},
		Worker: WorkerConfig{
			StaleCheckIntervalMinutes: getEnvAsInt("WORKER_STALE_CHECK_INTERVAL_MINUTES", 60),
			StaleThresholdDays:        getEnvAsInt("WORKER_STALE_THRESHOLD_DAYS", 7),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// StaleCheckInterval returns the reporter tick interval.
func (w WorkerConfig) StaleCheckInterval() time.Duration {
	if w.StaleCheckIntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(w.StaleCheckIntervalMinutes) * time.Minute
}

// StaleThreshold returns the age beyond which a deliverable counts as stale.
func (w WorkerConfig) StaleThreshold() time.Duration {
	days := w.StaleThresholdDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
