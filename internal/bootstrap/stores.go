package bootstrap

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishRPG_Go/internal/config"
	"github.com/osse101/BrandishRPG_Go/internal/cooldown"
	"github.com/osse101/BrandishRPG_Go/internal/database/postgres"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
)

// Stores holds the storage layer the services are built on. Item reads go
// through an LRU cache in front of the Postgres store.
type Stores struct {
	Game      *postgres.Store
	Items     *equipment.CachedItemStore
	Cooldowns cooldown.Service
	EventLog  *postgres.EventLogRepository
}

// InitializeStores wraps the pool in the game store and the item cache
func InitializeStores(dbPool *pgxpool.Pool, cfg *config.Config) *Stores {
	game := postgres.NewStore(dbPool)
	stores := &Stores{
		Game:      game,
		Items:     equipment.NewCachedItemStore(game, cfg.ItemCacheSize, cfg.ItemCacheTTL),
		Cooldowns: cooldown.NewPostgresService(dbPool, cooldown.NewConfig(cfg.DevMode, cfg.AdventureCooldown, cfg.RaidCooldown)),
		EventLog:  postgres.NewEventLogRepository(dbPool),
	}
	if err := metrics.RegisterPoolCollector(metrics.NewPoolCollector(metrics.PgxPoolStats(dbPool))); err != nil {
		slog.Warn(LogMsgPoolMetricsUnavailable, "error", err)
	}
	slog.Info(LogMsgStoresInitialized,
		"item_cache_size", cfg.ItemCacheSize,
		"item_cache_ttl", cfg.ItemCacheTTL,
		"dev_mode", cfg.DevMode)
	return stores
}
