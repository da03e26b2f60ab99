package combat

import "github.com/osse101/BrandishRPG_Go/internal/rng"

// Source is the random source the engine draws from
type Source = rng.Source

// NewSource returns a seeded Source
func NewSource(seed int64) Source {
	return rng.New(seed)
}

// BaseStats are a combatant's stats before buffs
type BaseStats struct {
	Attack  float64
	Defense float64
	HP      float64
}

// BaseStatFormula derives base stats from level. Call sites choose the
// formula; the engine never assumes one.
type BaseStatFormula func(level int) BaseStats

// RPGBase scales with level: attack 25+2L, defense 10+1.5L, HP 100+10L
func RPGBase(level int) BaseStats {
	l := float64(level)
	return BaseStats{Attack: 25 + 2*l, Defense: 10 + 1.5*l, HP: 100 + 10*l}
}

// SimpleBase ignores level
func SimpleBase(int) BaseStats {
	return BaseStats{Attack: 25, Defense: 10, HP: 100}
}

// EnemyBase is used for adventure stage monsters
func EnemyBase(level int) BaseStats {
	l := float64(level)
	return BaseStats{Attack: 18 + 3*l, Defense: 6 + 1.5*l, HP: 70 + 12*l}
}

// BossBase is used for raid bosses
func BossBase(level int) BaseStats {
	l := float64(level)
	return BaseStats{Attack: 35 + 4*l, Defense: 25 + 2.5*l, HP: 600 + 60*l}
}

// FixedBase returns a formula that always yields stats. Useful for scripted
// encounters and tests.
func FixedBase(stats BaseStats) BaseStatFormula {
	return func(int) BaseStats { return stats }
}
