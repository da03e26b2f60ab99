package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Gameplay and background work
	StartingBalance int64
	DuelExpiry      time.Duration
	SweepInterval   time.Duration
	WorkerCount     int
	ItemCacheSize   int
	ItemCacheTTL    time.Duration
	SetTablesPath   string

	// Campaign cooldowns; DevMode skips enforcement
	DevMode           bool
	AdventureCooldown time.Duration
	RaidCooldown      time.Duration

	// Persisted event history
	EventLogRetentionDays int
	EventLogCleanupEvery  time.Duration

	// Event publishing; zero values fall back to bootstrap defaults
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StartingBalance: int64(getEnvAsInt("STARTING_BALANCE", DefaultStartingBalance)),
		DuelExpiry:      getEnvAsDuration("DUEL_EXPIRY", DefaultDuelExpiry),
		SweepInterval:   getEnvAsDuration("SWEEP_INTERVAL", DefaultSweepInterval),
		WorkerCount:     atLeast(getEnvAsInt("WORKER_COUNT", DefaultWorkerCount), 1, DefaultWorkerCount),
		ItemCacheSize:   atLeast(getEnvAsInt("ITEM_CACHE_SIZE", DefaultItemCacheSize), 1, DefaultItemCacheSize),
		ItemCacheTTL:    getEnvAsDuration("ITEM_CACHE_TTL", DefaultItemCacheTTL),
		SetTablesPath:   getEnv("SET_TABLES_PATH", ""),

		DevMode:           getEnvAsBool("DEV_MODE", false),
		AdventureCooldown: getEnvAsDuration("ADVENTURE_COOLDOWN", DefaultAdventureCooldown),
		RaidCooldown:      getEnvAsDuration("RAID_COOLDOWN", DefaultRaidCooldown),

		EventLogRetentionDays: atLeast(getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays), 0, DefaultEventLogRetentionDays),
		EventLogCleanupEvery:  getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupEvery),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 0),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 0),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	if port < 0 || port > maxPort {
		return nil, fmt.Errorf("%s: %d out of range", ErrMsgInvalidPort, port)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

// ErrMissingAPIKey is returned by Load when API_KEY is empty
var ErrMissingAPIKey = errors.New("API_KEY environment variable must be set")

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts the strconv.ParseBool spellings
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// atLeast returns fallback when v is below floor
func atLeast(v, floor, fallback int) int {
	if v < floor {
		return fallback
	}
	return v
}

// getEnvAsDuration parses a time.Duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range splitAndTrim(os.Getenv(key)) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL URL with credentials escaped
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
