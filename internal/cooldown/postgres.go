package cooldown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// postgresBackend keeps cooldowns in character_cooldowns. Enforcement is
// serialized across processes with a transaction-scoped advisory lock, which
// holds even before the first row for a character and action exists.
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a cooldown service backed by db
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{db: db, config: config}
}

func (b *postgresBackend) CheckCooldown(ctx context.Context, characterID, action string, reduction float64) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	lastUsed, err := lastUsedAt(ctx, b.db, characterID, action)
	if err != nil {
		return false, 0, fmt.Errorf("check %s cooldown: %w", action, err)
	}
	onCooldown, remaining := remainingAfter(b.config.now(), lastUsed, b.config.effective(action, reduction))
	return onCooldown, remaining, nil
}

// EnforceCooldown rejects early on an unlocked read, then rechecks under the
// advisory lock so only one concurrent caller runs fn
func (b *postgresBackend) EnforceCooldown(ctx context.Context, characterID, action string, reduction float64, fn func() error) error {
	log := logger.FromContext(ctx).With("action", action, "character_id", characterID)

	onCooldown, remaining, err := b.CheckCooldown(ctx, characterID, action, reduction)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass)
		if err := fn(); err != nil {
			return err
		}
		// Recorded anyway so GetLastUsed reflects dev play
		_, err := b.db.Exec(ctx, sqlUpsertCooldown, characterID, action, b.config.now())
		return err
	}

	err = pgx.BeginFunc(ctx, b.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlAdvisoryLock, characterID, action); err != nil {
			return fmt.Errorf("lock %s cooldown: %w", action, err)
		}

		lastUsed, err := lastUsedAt(ctx, tx, characterID, action)
		if err != nil {
			return fmt.Errorf("recheck %s cooldown: %w", action, err)
		}
		if onCooldown, remaining := remainingAfter(b.config.now(), lastUsed, b.config.effective(action, reduction)); onCooldown {
			log.Debug(LogMsgLostRace, "remaining", remaining)
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}

		if err := fn(); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sqlUpsertCooldown, characterID, action, b.config.now()); err != nil {
			return fmt.Errorf("start %s cooldown: %w", action, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug(LogMsgCooldownStarted)
	return nil
}

func (b *postgresBackend) ResetCooldown(ctx context.Context, characterID, action string) error {
	if _, err := b.db.Exec(ctx, sqlDeleteCooldown, characterID, action); err != nil {
		return fmt.Errorf("reset %s cooldown: %w", action, err)
	}
	return nil
}

func (b *postgresBackend) GetLastUsed(ctx context.Context, characterID, action string) (*time.Time, error) {
	return lastUsedAt(ctx, b.db, characterID, action)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// lastUsedAt returns nil when the action has never completed
func lastUsedAt(ctx context.Context, q rowQuerier, characterID, action string) (*time.Time, error) {
	var t time.Time
	err := q.QueryRow(ctx, sqlSelectLastUsed, characterID, action).Scan(&t)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read last use of %s: %w", action, err)
	}
	return &t, nil
}
