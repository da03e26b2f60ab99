package domain

import (
	"math"
	"time"
)

// Cooldown-gated character actions
const (
	ActionAdventure = "adventure"
	ActionRaid      = "raid"
)

// MaxCooldownReduction caps how much of a cooldown buffs can remove
const MaxCooldownReduction = 0.9

// ReducedCooldown shortens base by the character's cooldownReduction fraction
func ReducedCooldown(base time.Duration, reduction float64) time.Duration {
	if reduction <= 0 {
		return base
	}
	if reduction > MaxCooldownReduction {
		reduction = MaxCooldownReduction
	}
	return time.Duration(math.Round(float64(base) * (1 - reduction)))
}
