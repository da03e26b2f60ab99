// Package reaction interprets elemental reaction table rows. It holds no
// per-reaction code: every effect comes from which fields a row sets.
package reaction

import (
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/utils"
)

// ReflectDuration is how many of the owner's turns a reflect lasts
const ReflectDuration = 2

// Effects lists everything a proc asks the caller to apply. Zero values and
// nil pointers mean the effect is absent.
type Effects struct {
	StunTurns      int                    `json:"stun_turns,omitempty"`
	ReflectPercent float64                `json:"reflect_percent,omitempty"`
	ReflectTurns   int                    `json:"reflect_turns,omitempty"`
	HealPercent    float64                `json:"heal_percent,omitempty"` // of the attacker's max HP
	Energy         float64                `json:"energy,omitempty"`
	DefenseDown    *domain.TimedEffect    `json:"defense_down,omitempty"`
	DamageOverTime *domain.TimedEffect    `json:"dot,omitempty"`    // Amount is damage per turn
	Shield         *domain.TimedEffect    `json:"shield,omitempty"` // Amount is a fraction of max HP
	Buff           *domain.StatBuffEffect `json:"buff,omitempty"`
}

// Result is the outcome of one Apply call
type Result struct {
	Damage   float64  `json:"damage"`
	Procced  bool     `json:"procced"`
	Name     string   `json:"name,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Effects  Effects  `json:"effects"`
}

// Apply rolls the reaction's proc chance (plus procBonus) and, on success,
// applies every effect the row defines. attack scales bonus and
// over-time damage. A nil def or failed roll returns baseDamage unchanged.
//
// Random draws: one for the proc, then one for the stun when the row has a
// stun chance.
func Apply(baseDamage float64, def *domain.ReactionDef, attack, procBonus float64, src rng.Source) Result {
	res := Result{Damage: baseDamage}
	if def == nil {
		return res
	}

	chance := utils.Clamp(def.EffectiveProcChance()+procBonus, 0, 1)
	if src.Float64() >= chance {
		return res
	}

	res.Procced = true
	res.Name = def.Name
	res.Messages = append(res.Messages, def.Name+"!")

	if def.DamageMultiplier > 0 {
		res.Damage *= def.DamageMultiplier
		res.Messages = append(res.Messages, fmt.Sprintf("x%.1f damage", def.DamageMultiplier))
	}
	if def.BonusDamage > 0 {
		bonus := attack * def.BonusDamage
		res.Damage += bonus
		res.Messages = append(res.Messages, fmt.Sprintf("+%.0f bonus damage", bonus))
	}
	if def.StunChance > 0 && src.Float64() < def.StunChance {
		res.Effects.StunTurns = max(def.StunDuration, 1)
		res.Messages = append(res.Messages, "target stunned")
	}
	if def.ReflectPercent > 0 {
		res.Effects.ReflectPercent = def.ReflectPercent
		res.Effects.ReflectTurns = ReflectDuration
		res.Messages = append(res.Messages, fmt.Sprintf("reflecting %.0f%%", def.ReflectPercent*100))
	}
	if def.HealPercent > 0 {
		res.Effects.HealPercent = def.HealPercent
		res.Messages = append(res.Messages, fmt.Sprintf("healing %.0f%% HP", def.HealPercent*100))
	}
	if def.DefenseReduction != nil {
		e := *def.DefenseReduction
		res.Effects.DefenseDown = &e
		res.Messages = append(res.Messages, fmt.Sprintf("defense -%.0f%% for %d turns", e.Amount*100, e.Duration))
	}
	if def.DamageOverTime != nil {
		res.Effects.DamageOverTime = &domain.TimedEffect{
			Amount:   attack * def.DamageOverTime.Amount,
			Duration: def.DamageOverTime.Duration,
		}
		res.Messages = append(res.Messages, fmt.Sprintf("burning for %d turns", def.DamageOverTime.Duration))
	}
	if def.Shield != nil {
		e := *def.Shield
		res.Effects.Shield = &e
		res.Messages = append(res.Messages, fmt.Sprintf("shield %.0f%% HP", e.Amount*100))
	}
	if def.Buff != nil {
		b := *def.Buff
		res.Effects.Buff = &b
		res.Messages = append(res.Messages, fmt.Sprintf("%s up for %d turns", b.Stat, b.Duration))
	}
	if def.Energy > 0 {
		res.Effects.Energy = def.Energy
		res.Messages = append(res.Messages, fmt.Sprintf("+%.0f energy", def.Energy))
	}

	return res
}
