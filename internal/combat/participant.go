package combat

import (
	"math"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Fighter is everything the engine needs to build one side of a fight
type Fighter struct {
	ID    string
	Name  string
	Level int
	Buffs domain.ActiveBuffs
	Base  BaseStatFormula

	// Reaction overrides Buffs.SetInfo.Reaction when set
	Reaction *domain.ReactionDef
}

// Participant is the mutable in-fight state of one combatant. Campaigns
// reuse the player's Participant across stages so HP and statuses carry
// over.
type Participant struct {
	id   string
	name string

	attack  float64
	defense float64
	maxHP   float64
	hp      float64

	critRate float64
	critMult float64
	dodge    float64
	luck     float64

	counterChance   float64
	counterPower    float64
	lifesteal       float64
	lifestealChance float64

	damageBonus       float64
	procRate          float64
	cooldownReduction float64
	healingBoost      float64
	energyGain        float64

	reaction *domain.ReactionDef

	// per-combat state
	energy          float64
	ownTurns        int
	reactionReadyAt int

	// persistent state
	stunTurns int
	statuses  statusList
}

// NewParticipant derives combat-ready values from a fighter's snapshot
func NewParticipant(f Fighter) *Participant {
	formula := f.Base
	if formula == nil {
		formula = RPGBase
	}
	base := formula(f.Level)
	b := f.Buffs

	p := &Participant{
		id:                f.ID,
		name:              f.Name,
		attack:            math.Max(0, math.Floor(base.Attack*(1+b.Attack))+b.AttackFlat),
		defense:           math.Max(0, math.Floor(base.Defense*(1+b.Defense))+b.DefenseFlat),
		maxHP:             math.Max(1, math.Floor(base.HP*(1+b.HPPercent))+b.HPFlat),
		critRate:          BaseCritRate + b.CritChance,
		critMult:          1 + b.CritDMG/100,
		dodge:             BaseDodge + b.Dodge + b.Luck*DodgePerLuck,
		luck:              b.Luck,
		counterChance:     math.Min(b.CounterChance, CounterChanceCap),
		counterPower:      CounterBasePower + b.CounterDamage,
		lifesteal:         b.Lifesteal,
		lifestealChance:   b.LifestealChance,
		damageBonus:       b.DamageBonus,
		procRate:          b.ProcRate,
		cooldownReduction: b.CooldownReduction,
		healingBoost:      b.HealingBoost,
		energyGain:        b.Energy,
		reaction:          f.Reaction,
	}
	if p.reaction == nil {
		p.reaction = b.SetInfo.Reaction
	}
	p.hp = p.maxHP
	return p
}

// ID returns the combatant id
func (p *Participant) ID() string { return p.id }

// Name returns the display name
func (p *Participant) Name() string { return p.name }

// HP returns current HP. It may be negative after a knockout.
func (p *Participant) HP() float64 { return p.hp }

// MaxHP returns maximum HP
func (p *Participant) MaxHP() float64 { return p.maxHP }

// Attack returns attack before timed buffs
func (p *Participant) Attack() float64 { return p.attack }

// Defense returns defense before timed effects
func (p *Participant) Defense() float64 { return p.defense }

// Stunned reports whether the participant will skip its next turn
func (p *Participant) Stunned() bool { return p.stunTurns > 0 }

func (p *Participant) alive() bool { return p.hp > 0 }

func (p *Participant) isLow() bool { return p.hp < p.maxHP*DesperateHPFraction }

// beginCombat resets state that does not carry between fights
func (p *Participant) beginCombat() {
	p.energy = 0
	p.ownTurns = 0
	p.reactionReadyAt = 0
}

func (p *Participant) effectiveAttack() float64 {
	return p.attack * (1 + p.statuses.buff(domain.BuffStatAttack))
}

func (p *Participant) effectiveDefense() float64 {
	reduction := math.Min(1, p.statuses.sum(statusDefenseDown))
	d := p.defense * (1 + p.statuses.buff(domain.BuffStatDefense)) * (1 - reduction)
	return math.Max(0, d)
}

func (p *Participant) effectiveCritRate() float64 {
	return p.critRate + p.statuses.buff(domain.BuffStatCrit)
}

// heal raises HP up to max and returns the amount restored
func (p *Participant) heal(amount float64) float64 {
	if amount <= 0 || !p.alive() {
		return 0
	}
	before := p.hp
	p.hp = math.Min(p.maxHP, p.hp+amount)
	return p.hp - before
}

func (p *Participant) stun(turns int) {
	if turns > p.stunTurns {
		p.stunTurns = turns
	}
}

// beginTurn counts one of the participant's own turns, whether it ends up
// attacking, stunned or dodged
func (p *Participant) beginTurn() {
	p.ownTurns++
}

// reactionReady reports whether the reaction may roll this turn
func (p *Participant) reactionReady() bool {
	return p.reaction != nil && p.ownTurns >= p.reactionReadyAt
}

// startReactionCooldown blocks the reaction for the next cooldown own turns
func (p *Participant) startReactionCooldown() {
	cd := int(math.Ceil(ReactionCooldownTurns * (1 - p.cooldownReduction)))
	p.reactionReadyAt = p.ownTurns + cd + 1
}

// mitigation is the fraction of damage that gets through defense
func mitigation(defense float64) float64 {
	return 1 - defense/(defense+ArmorConstant)
}

// CharacterFighter builds a fighter from a stored character and its
// aggregated buffs, using the RPG level formula
func CharacterFighter(c *domain.Character, buffs domain.ActiveBuffs) Fighter {
	return Fighter{
		ID:    c.ID,
		Name:  c.Name,
		Level: c.Level,
		Buffs: buffs,
		Base:  RPGBase,
	}
}
