package domain

// DefaultReactionProcChance applies when a reaction omits proc_chance
const DefaultReactionProcChance = 0.15

// TimedEffect is an amount that lasts a number of turns
type TimedEffect struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Duration int     `json:"duration" yaml:"duration"`
}

// ReactionBuffStat is a combat stat a reaction can temporarily raise
type ReactionBuffStat string

const (
	BuffStatAttack  ReactionBuffStat = "attack"
	BuffStatDefense ReactionBuffStat = "defense"
	BuffStatCrit    ReactionBuffStat = "crit"
)

// StatBuffEffect temporarily raises one combat stat.
// Attack and defense amounts are fractions, crit is percent points.
type StatBuffEffect struct {
	Stat     ReactionBuffStat `json:"stat" yaml:"stat"`
	Amount   float64          `json:"amount" yaml:"amount"`
	Duration int              `json:"duration" yaml:"duration"`
}

// ReactionDef is one row of the elemental reaction table. Every optional field
// that is set contributes its effect when the reaction procs; fields are not
// mutually exclusive.
type ReactionDef struct {
	Key      string    `json:"key" yaml:"-"`
	Name     string    `json:"name" yaml:"name"`
	Elements []Element `json:"elements" yaml:"elements"`

	ProcChance float64 `json:"proc_chance" yaml:"proc_chance"`

	DamageMultiplier float64 `json:"damage_multiplier,omitempty" yaml:"damage_multiplier"`
	BonusDamage      float64 `json:"bonus_damage,omitempty" yaml:"bonus_damage"` // x attacker attack, ignores defense
	StunChance       float64 `json:"stun_chance,omitempty" yaml:"stun_chance"`
	StunDuration     int     `json:"stun_duration,omitempty" yaml:"stun_duration"`
	ReflectPercent   float64 `json:"reflect_percent,omitempty" yaml:"reflect_percent"`
	HealPercent      float64 `json:"heal_percent,omitempty" yaml:"heal_percent"`
	Energy           float64 `json:"energy,omitempty" yaml:"energy"`

	DefenseReduction *TimedEffect    `json:"defense_reduction,omitempty" yaml:"defense_reduction"`
	DamageOverTime   *TimedEffect    `json:"dot,omitempty" yaml:"dot"`
	Shield           *TimedEffect    `json:"shield,omitempty" yaml:"shield"`
	Buff             *StatBuffEffect `json:"buff,omitempty" yaml:"buff"`
}

// EffectiveProcChance returns the configured proc chance or the default
func (r *ReactionDef) EffectiveProcChance() float64 {
	if r.ProcChance <= 0 {
		return DefaultReactionProcChance
	}
	return r.ProcChance
}
