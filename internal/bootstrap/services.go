package bootstrap

import (
	"log/slog"

	"github.com/osse101/BrandishRPG_Go/internal/adventure"
	"github.com/osse101/BrandishRPG_Go/internal/buffs"
	"github.com/osse101/BrandishRPG_Go/internal/character"
	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/config"
	"github.com/osse101/BrandishRPG_Go/internal/duel"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/server"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

// Services holds the game services and the state their background jobs share
type Services struct {
	server.Services
	Arena *duel.Arena
}

// InitializeServices wires every game service onto one lock manager and
// random source so per-character serialization holds across services
func InitializeServices(stores *Stores, tables *setbonus.Tables, cfg *config.Config, publisher *event.ResilientPublisher) *Services {
	calc := buffs.NewCalculatorWithTables(stores.Items, tables)
	locks := concurrency.NewLockManager()
	rnd := rng.NewTimeSeeded()
	arena := duel.NewArena(cfg.DuelExpiry)

	svc := &Services{
		Services: server.Services{
			Store:      stores.Game,
			Characters: character.NewService(stores.Game, calc, locks, cfg.StartingBalance),
			Equipment:  equipment.NewServiceWithTables(stores.Game, stores.Items, locks, publisher, rnd, tables),
			Duels:      duel.NewService(stores.Game, arena, calc, locks, publisher, rnd),
			Adventures: adventure.NewService(stores.Game, calc, locks, publisher, rnd, stores.Cooldowns),
			Events:     eventlog.NewService(stores.EventLog),
		},
		Arena: arena,
	}

	slog.Info(LogMsgServicesInitialized,
		"starting_balance", cfg.StartingBalance,
		"duel_expiry", cfg.DuelExpiry,
		"adventure_cooldown", cfg.AdventureCooldown,
		"raid_cooldown", cfg.RaidCooldown)
	return svc
}
