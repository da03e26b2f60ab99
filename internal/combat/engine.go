// Package combat resolves turn-based fights between two stat snapshots.
// A fight runs start to finish without I/O; all randomness comes from the
// Source passed in.
package combat

import (
	"math"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/reaction"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
)

// Resolve runs a fresh fight between two fighters
func Resolve(attacker, defender Fighter, mode Mode, src Source) *domain.CombatResult {
	return ResolveParticipants(NewParticipant(attacker), NewParticipant(defender), mode, src)
}

// ResolveParticipants runs a fight between existing participants, mutating
// their HP and statuses. The attacker acts first every round.
//
// The fight ends on the first knockout, even mid-round. If the turn cap is
// reached the side with strictly more HP wins; equal HP goes to the defender.
func ResolveParticipants(attacker, defender *Participant, mode Mode, src Source) *domain.CombatResult {
	f := &fight{
		mode: mode.withDefaults(),
		src:  src,
		p:    [2]*Participant{attacker, defender},
		res: &domain.CombatResult{
			Mode: mode.Name,
			Log:  []domain.CombatLogEntry{},
		},
	}
	attacker.beginCombat()
	defender.beginCombat()

	f.run()

	for side, p := range f.p {
		f.res.Combatants[side].ID = p.id
		f.res.Combatants[side].FinalHP = p.hp
		f.res.Combatants[side].MaxHP = p.maxHP
	}
	f.res.WinnerID = f.p[f.res.Winner].id
	return f.res
}

type fight struct {
	mode Mode
	src  Source
	p    [2]*Participant
	res  *domain.CombatResult
}

func (f *fight) run() {
	for round := 1; round <= f.mode.TurnCap; round++ {
		f.res.Turns = round
		for _, side := range []domain.Side{domain.SideAttacker, domain.SideDefender} {
			if f.takeTurn(round, side) {
				return
			}
		}
	}

	f.res.Termination = domain.TerminationTurnCap
	if f.p[domain.SideAttacker].hp > f.p[domain.SideDefender].hp {
		f.res.Winner = domain.SideAttacker
	} else {
		f.res.Winner = domain.SideDefender
	}
}

// takeTurn plays one side's turn and reports whether the fight ended
func (f *fight) takeTurn(round int, side domain.Side) bool {
	actor := f.p[side]
	opp := side.Opponent()
	actor.beginTurn()

	if dot := math.Floor(actor.statuses.tick()); dot > 0 {
		actor.hp -= dot
		f.res.Combatants[opp].TotalDamage += int(dot)
		f.log(domain.CombatLogEntry{Turn: round, Actor: opp, Action: domain.ActionDot, Damage: int(dot), TargetHP: actor.hp})
		if !actor.alive() {
			return f.knockout(opp)
		}
	}

	if actor.stunTurns > 0 {
		actor.stunTurns--
		f.res.Combatants[side].TurnsSkipped++
		f.log(domain.CombatLogEntry{Turn: round, Actor: side, Action: domain.ActionStunned, TargetHP: f.p[opp].hp})
		return false
	}

	return f.attack(round, side)
}

// attack resolves one attack from side against its opponent
func (f *fight) attack(round int, side domain.Side) bool {
	actor, target := f.p[side], f.p[side.Opponent()]
	stats := &f.res.Combatants[side]
	phase := phaseFor(round, actor, target)
	entry := domain.CombatLogEntry{Turn: round, Actor: side, Action: domain.ActionAttack}

	// Dodge
	dodge := target.dodge
	if phase == PhaseDesperate && target.isLow() {
		dodge += DesperateDodgeBonus
	}
	if rng.Chance(f.src, math.Min(dodge, f.mode.DodgeCap)) {
		f.res.Combatants[side.Opponent()].Dodges++
		entry.Action = domain.ActionDodge
		entry.TargetHP = target.hp
		f.log(entry)
		return false
	}

	// Armor formula with variance and floor
	attack := actor.effectiveAttack()
	through := mitigation(target.effectiveDefense())
	variance := rng.Uniform(f.src, f.mode.VarianceMin, f.mode.VarianceMax)
	damage := f.floor(math.Floor(attack * through * variance))

	// Crit
	critRate := actor.effectiveCritRate()
	if phase == PhaseOpening {
		critRate += OpeningCritBonus
	}
	if rng.Chance(f.src, critRate) {
		damage = math.Floor(damage * actor.critMult)
		entry.Crit = true
		entry.Procs = append(entry.Procs, ProcCrit)
		if phase == PhaseOpening {
			entry.Procs = append(entry.Procs, ProcOpening)
		}
		stats.Crits++
	}

	// Flat damage bonuses
	mult := 1 + actor.damageBonus
	if phase == PhaseDesperate && actor.isLow() {
		mult += DesperateDamageBonus
		entry.Procs = append(entry.Procs, ProcDesperate)
	}
	damage = math.Floor(damage * mult)

	// Energy comes only from the energy stat and reaction grants
	actor.energy += actor.energyGain
	if actor.energy >= EnergyBurstLevel {
		damage = math.Floor(damage * EnergyBurstMult)
		actor.energy = 0
		entry.Procs = append(entry.Procs, ProcEnergyBurst)
	}

	// Elemental reaction
	if actor.reactionReady() {
		r := reaction.Apply(damage, actor.reaction, attack, actor.procRate, f.src)
		if r.Procced {
			damage = math.Floor(r.Damage)
			stats.ReactionProcs++
			entry.Procs = append(entry.Procs, r.Name)
			f.applyReaction(side, r.Effects)
			actor.startReactionCooldown()
		}
	}

	// Procs, in order; each reads the damage left by the previous one
	if rng.Chance(f.src, math.Min(CrushingBaseChance+actor.luck*CrushingPerLuck, CrushingChanceCap)) {
		halved := target.effectiveDefense() * CrushingDefenseScale
		damage = math.Floor(damage*mitigation(halved)/through) + CrushingFlatBonus
		entry.Procs = append(entry.Procs, ProcCrushingBlow)
	}

	followUp := 0.0
	if rng.Chance(f.src, math.Min(FuryBaseChance+actor.luck*FuryPerLuck, FuryChanceCap)) {
		v := rng.Uniform(f.src, f.mode.VarianceMin, f.mode.VarianceMax)
		followUp = f.floor(math.Floor(attack * FuryPower * through * v))
		entry.Procs = append(entry.Procs, ProcFury)
	}

	lifestealChance := LifestealBaseChance + actor.luck*LifestealPerLuck + actor.lifestealChance
	if rng.Chance(f.src, math.Min(lifestealChance, LifestealChanceCap)) {
		healed := actor.heal((damage + followUp) * (LifestealHealRatio + actor.lifesteal/100))
		stats.HealingDone += int(healed)
		entry.Procs = append(entry.Procs, ProcLifesteal)
	}

	if rng.Chance(f.src, math.Min(StunBaseChance+actor.luck*StunPerLuck, StunChanceCap)) {
		target.stun(1)
		entry.Procs = append(entry.Procs, ProcStun)
	}

	// Shields soak the main hit first, then the follow-up
	if absorbed := target.statuses.absorb(damage); absorbed > 0 {
		damage -= absorbed
		entry.Procs = append(entry.Procs, ProcShield)
	}
	followUp -= target.statuses.absorb(followUp)

	target.hp -= damage
	stats.TotalDamage += int(damage)
	entry.Damage = int(damage)
	entry.TargetHP = target.hp
	f.log(entry)

	if followUp > 0 {
		target.hp -= followUp
		stats.TotalDamage += int(followUp)
		f.log(domain.CombatLogEntry{Turn: round, Actor: side, Action: domain.ActionFollowUp, Damage: int(followUp), TargetHP: target.hp})
	}

	if !target.alive() {
		return f.knockout(side)
	}

	if f.reflect(round, side, damage+followUp) {
		return true
	}
	return f.counter(round, side)
}

// reflect returns part of the damage the target just took to the attacker
func (f *fight) reflect(round int, side domain.Side, taken float64) bool {
	actor, target := f.p[side], f.p[side.Opponent()]
	pct := target.statuses.maxAmount(statusReflect)
	if pct <= 0 || taken <= 0 {
		return false
	}

	back := math.Floor(taken * pct)
	if back <= 0 {
		return false
	}
	actor.hp -= back
	f.res.Combatants[side.Opponent()].TotalDamage += int(back)
	f.log(domain.CombatLogEntry{Turn: round, Actor: side.Opponent(), Action: domain.ActionReflect, Damage: int(back), TargetHP: actor.hp, Procs: []string{ProcReflect}})

	if !actor.alive() {
		return f.knockout(side.Opponent())
	}
	return false
}

// counter lets a surviving, non-stunned target strike back
func (f *fight) counter(round int, side domain.Side) bool {
	actor, target := f.p[side], f.p[side.Opponent()]
	if target.stunTurns > 0 || target.counterChance <= 0 {
		return false
	}
	if !rng.Chance(f.src, target.counterChance) {
		return false
	}

	damage := f.floor(math.Floor(target.effectiveAttack() * target.counterPower * mitigation(actor.effectiveDefense())))
	damage -= actor.statuses.absorb(damage)
	actor.hp -= damage

	counterStats := &f.res.Combatants[side.Opponent()]
	counterStats.Counters++
	counterStats.TotalDamage += int(damage)
	f.log(domain.CombatLogEntry{Turn: round, Actor: side.Opponent(), Action: domain.ActionCounter, Damage: int(damage), TargetHP: actor.hp})

	if !actor.alive() {
		return f.knockout(side.Opponent())
	}
	return false
}

// applyReaction queues reaction effects on the attacker or its target
func (f *fight) applyReaction(side domain.Side, e reaction.Effects) {
	actor, target := f.p[side], f.p[side.Opponent()]

	if e.StunTurns > 0 {
		target.stun(e.StunTurns)
	}
	if e.ReflectPercent > 0 {
		actor.statuses.add(status{kind: statusReflect, amount: e.ReflectPercent, turns: e.ReflectTurns})
	}
	if e.HealPercent > 0 {
		healed := actor.heal(actor.maxHP * e.HealPercent * (1 + actor.healingBoost))
		f.res.Combatants[side].HealingDone += int(healed)
	}
	if e.DefenseDown != nil {
		target.statuses.add(status{kind: statusDefenseDown, amount: e.DefenseDown.Amount, turns: e.DefenseDown.Duration})
	}
	if e.DamageOverTime != nil {
		target.statuses.add(status{kind: statusDot, amount: e.DamageOverTime.Amount, turns: e.DamageOverTime.Duration})
	}
	if e.Shield != nil {
		actor.statuses.add(status{kind: statusShield, amount: actor.maxHP * e.Shield.Amount, turns: e.Shield.Duration})
	}
	if e.Buff != nil {
		actor.statuses.add(status{kind: statusBuff, stat: e.Buff.Stat, amount: e.Buff.Amount, turns: e.Buff.Duration})
	}
	actor.energy += e.Energy
}

func (f *fight) floor(damage float64) float64 {
	return math.Max(damage, f.mode.DamageFloor)
}

func (f *fight) knockout(winner domain.Side) bool {
	f.res.Winner = winner
	f.res.Termination = domain.TerminationKnockout
	return true
}

func (f *fight) log(entry domain.CombatLogEntry) {
	f.res.Log = append(f.res.Log, entry)
}
