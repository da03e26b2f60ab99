// Package cooldown rate-limits repeatable character actions. A character's
// cooldownReduction stat shortens every cooldown it waits on.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Service manages action cooldowns for characters
type Service interface {
	// CheckCooldown reports whether the action is still cooling down and for how long
	CheckCooldown(ctx context.Context, characterID, action string, reduction float64) (bool, time.Duration, error)

	// EnforceCooldown atomically checks the cooldown, runs fn, and starts a new
	// cooldown only when fn succeeds
	EnforceCooldown(ctx context.Context, characterID, action string, reduction float64, fn func() error) error

	// ResetCooldown clears a cooldown
	ResetCooldown(ctx context.Context, characterID, action string) error

	// GetLastUsed returns when the action last completed, or nil
	GetLastUsed(ctx context.Context, characterID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when an action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining / time.Minute)
	seconds := int(e.Remaining % time.Minute / time.Second)
	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is matches any ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// remainingAfter reports whether a cooldown of duration started at lastUsed
// is still running at now, and how much of it is left
func remainingAfter(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	if left := lastUsed.Add(duration).Sub(now); left > 0 {
		return true, left
	}
	return false, 0
}
