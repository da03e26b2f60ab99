package config

import (
	"strings"
	"time"
)

// Defaults applied when the matching environment variable is unset or invalid
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "brandishrpg"
	DefaultEnvironment = "dev"
	DefaultDBName      = "brandishrpg"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultStartingBalance = 500
	DefaultDuelExpiry      = 5 * time.Minute
	DefaultSweepInterval   = 30 * time.Second
	DefaultWorkerCount     = 4
	DefaultItemCacheSize   = 1024
	DefaultItemCacheTTL    = 10 * time.Minute

	DefaultAdventureCooldown = 2 * time.Minute
	DefaultRaidCooldown      = 15 * time.Minute

	DefaultEventLogRetentionDays = 30
	DefaultEventLogCleanupEvery  = 6 * time.Hour
)

const maxPort = 65535

const ErrMsgInvalidPort = "invalid PORT value"

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
