package domain

// BuffField names one field of ActiveBuffs. The string values double as the
// keys accepted in legacy item buff maps.
type BuffField string

const (
	BuffAttack            BuffField = "attack"
	BuffDefense           BuffField = "defense"
	BuffHPPercent         BuffField = "hpPercent"
	BuffMagic             BuffField = "magic"
	BuffMagicDefense      BuffField = "magicDefense"
	BuffAttackFlat        BuffField = "attackFlat"
	BuffDefenseFlat       BuffField = "defenseFlat"
	BuffHPFlat            BuffField = "hpFlat"
	BuffCritChance        BuffField = "critChance"
	BuffCritDMG           BuffField = "critDMG"
	BuffEnergy            BuffField = "energy"
	BuffDodge             BuffField = "dodge"
	BuffLuck              BuffField = "luck"
	BuffXPBoost           BuffField = "xpBoost"
	BuffHealingBoost      BuffField = "healingBoost"
	BuffLootBoost         BuffField = "lootBoost"
	BuffFindRateBoost     BuffField = "findRateBoost"
	BuffCooldownReduction BuffField = "cooldownReduction"
	BuffProcRate          BuffField = "procRate"
	BuffDamageBonus       BuffField = "damageBonus"
	BuffCounterChance     BuffField = "counterChance"
	BuffCounterDamage     BuffField = "counterDamage"
	BuffLifesteal         BuffField = "lifesteal"
	BuffLifestealChance   BuffField = "lifestealChance"
)

// IsValid reports whether f names an ActiveBuffs field
func (f BuffField) IsValid() bool {
	var b ActiveBuffs
	return b.fieldPtr(f) != nil
}

// StatContribution is one additive input to an ActiveBuffs snapshot
type StatContribution struct {
	Field BuffField `json:"field"`
	Value float64   `json:"value"`
}

// SetInfo describes which set effects are active. Display only.
type SetInfo struct {
	ActiveSets     []string     `json:"active_sets"`
	ActiveElements []Element    `json:"active_elements"`
	Resonance      Element      `json:"resonance,omitempty"`
	Reaction       *ReactionDef `json:"reaction,omitempty"`
}

// ActiveBuffs is the fully aggregated, clamped stat bundle for a character.
// It is recomputed for every stat-dependent operation and never persisted.
type ActiveBuffs struct {
	// Percentage multipliers stored as fractions (0.25 = +25%)
	Attack       float64 `json:"attack"`
	Defense      float64 `json:"defense"`
	HPPercent    float64 `json:"hpPercent"`
	Magic        float64 `json:"magic"`
	MagicDefense float64 `json:"magicDefense"`

	// Flat additives
	AttackFlat  float64 `json:"attackFlat"`
	DefenseFlat float64 `json:"defenseFlat"`
	HPFlat      float64 `json:"hpFlat"`

	// Crit in percent points; CritDMG is points above the 100 baseline
	CritChance float64 `json:"critChance"`
	CritDMG    float64 `json:"critDMG"`

	Energy            float64 `json:"energy"`
	Dodge             float64 `json:"dodge"`
	Luck              float64 `json:"luck"`
	XPBoost           float64 `json:"xpBoost"`
	HealingBoost      float64 `json:"healingBoost"`
	LootBoost         float64 `json:"lootBoost"`
	FindRateBoost     float64 `json:"findRateBoost"`
	CooldownReduction float64 `json:"cooldownReduction"`

	// Only ever granted by set bonuses
	ProcRate        float64 `json:"procRate"`
	DamageBonus     float64 `json:"damageBonus"`
	CounterChance   float64 `json:"counterChance"`
	CounterDamage   float64 `json:"counterDamage"`
	Lifesteal       float64 `json:"lifesteal"`
	LifestealChance float64 `json:"lifestealChance"`

	SetInfo SetInfo `json:"setInfo"`
}

// Add adds v to the named field. Returns false when the field is unknown.
func (b *ActiveBuffs) Add(field BuffField, v float64) bool {
	p := b.fieldPtr(field)
	if p == nil {
		return false
	}
	*p += v
	return true
}

// Set overwrites the named field. Returns false when the field is unknown.
func (b *ActiveBuffs) Set(field BuffField, v float64) bool {
	p := b.fieldPtr(field)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Get returns the value of the named field, or 0 when unknown
func (b *ActiveBuffs) Get(field BuffField) float64 {
	p := b.fieldPtr(field)
	if p == nil {
		return 0
	}
	return *p
}

func (b *ActiveBuffs) fieldPtr(field BuffField) *float64 {
	switch field {
	case BuffAttack:
		return &b.Attack
	case BuffDefense:
		return &b.Defense
	case BuffHPPercent:
		return &b.HPPercent
	case BuffMagic:
		return &b.Magic
	case BuffMagicDefense:
		return &b.MagicDefense
	case BuffAttackFlat:
		return &b.AttackFlat
	case BuffDefenseFlat:
		return &b.DefenseFlat
	case BuffHPFlat:
		return &b.HPFlat
	case BuffCritChance:
		return &b.CritChance
	case BuffCritDMG:
		return &b.CritDMG
	case BuffEnergy:
		return &b.Energy
	case BuffDodge:
		return &b.Dodge
	case BuffLuck:
		return &b.Luck
	case BuffXPBoost:
		return &b.XPBoost
	case BuffHealingBoost:
		return &b.HealingBoost
	case BuffLootBoost:
		return &b.LootBoost
	case BuffFindRateBoost:
		return &b.FindRateBoost
	case BuffCooldownReduction:
		return &b.CooldownReduction
	case BuffProcRate:
		return &b.ProcRate
	case BuffDamageBonus:
		return &b.DamageBonus
	case BuffCounterChance:
		return &b.CounterChance
	case BuffCounterDamage:
		return &b.CounterDamage
	case BuffLifesteal:
		return &b.Lifesteal
	case BuffLifestealChance:
		return &b.LifestealChance
	}
	return nil
}
