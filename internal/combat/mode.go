package combat

import "github.com/osse101/BrandishRPG_Go/internal/domain"

// Mode holds the tunables that differ between kinds of fight
type Mode struct {
	Name domain.CombatMode

	// TurnCap is the number of rounds after which HP decides the winner
	TurnCap int
	// DamageFloor is the minimum damage of any landed hit, counters and
	// follow-ups included
	DamageFloor float64
	// DodgeCap bounds dodge chance in percent points
	DodgeCap float64

	// Damage is multiplied by a uniform roll in [VarianceMin, VarianceMax)
	VarianceMin float64
	VarianceMax float64
}

// Mode presets
var (
	Duel = Mode{
		Name:        domain.ModeDuel,
		TurnCap:     50,
		DamageFloor: 5,
		DodgeCap:    40,
		VarianceMin: 0.8,
		VarianceMax: 1.2,
	}
	Adventure = Mode{
		Name:        domain.ModeAdventure,
		TurnCap:     50,
		DamageFloor: 5,
		DodgeCap:    30,
		VarianceMin: 0.8,
		VarianceMax: 1.2,
	}
	Raid = Mode{
		Name:        domain.ModeRaid,
		TurnCap:     100,
		DamageFloor: 1,
		DodgeCap:    50,
		VarianceMin: 0.8,
		VarianceMax: 1.2,
	}
)

// withDefaults fills zero fields so the loop always terminates
func (m Mode) withDefaults() Mode {
	if m.TurnCap <= 0 {
		m.TurnCap = Duel.TurnCap
	}
	if m.DamageFloor < 1 {
		m.DamageFloor = 1
	}
	if m.VarianceMin <= 0 && m.VarianceMax <= 0 {
		m.VarianceMin, m.VarianceMax = 1, 1
	}
	if m.VarianceMax < m.VarianceMin {
		m.VarianceMax = m.VarianceMin
	}
	return m
}
