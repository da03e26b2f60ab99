package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains or renames a variable
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty before the server starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholderValues are the example values shipped in .env.example
var placeholderValues = []struct {
	key, value, hint string
}{
	{"DB_PASSWORD", "change_this_secure_password", "please use a secure password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "generate a secure key with: openssl rand -hex 32"},
}

var (
	ErrSchemaVersionMissing  = errors.New("ENV_SCHEMA_VERSION is not set")
	ErrSchemaVersionMismatch = errors.New("ENV_SCHEMA_VERSION mismatch")
	ErrMissingEnvVars        = errors.New("missing required environment variables")
)

// ValidateEnv checks the schema version first, then that every required
// variable is set
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case "":
		return fmt.Errorf("%w, add it to your .env file (expected %s)", ErrSchemaVersionMissing, ExpectedEnvSchemaVersion)
	case ExpectedEnvSchemaVersion:
	default:
		return fmt.Errorf("%w: expected %s, got %s, your .env file may be outdated",
			ErrSchemaVersionMismatch, ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnvVars, strings.Join(missing, ", "))
	}

	if _, err := strconv.Atoi(os.Getenv("DB_PORT")); err != nil {
		return fmt.Errorf("DB_PORT must be numeric: %w", err)
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// work but are probably mistakes
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, p := range placeholderValues {
		if os.Getenv(p.key) == p.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value, %s", p.key, p.hint))
		}
	}

	if d, err := time.ParseDuration(os.Getenv("DUEL_EXPIRY")); err == nil && d < time.Minute {
		warnings = append(warnings, fmt.Sprintf("DUEL_EXPIRY of %s leaves little time to accept a challenge", d))
	}

	if getEnvAsBool("DEV_MODE", false) && os.Getenv("ENVIRONMENT") == "production" {
		warnings = append(warnings, "DEV_MODE is enabled in production, campaign cooldowns are not enforced")
	}

	if path := os.Getenv("SET_TABLES_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("SET_TABLES_PATH %q is not readable, built-in set tables will be used", path))
		}
	}

	return warnings, nil
}
