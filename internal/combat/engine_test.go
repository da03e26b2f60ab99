package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

// flat is a duel without damage variance
var flat = Mode{
	Name:        domain.ModeDuel,
	TurnCap:     50,
	DamageFloor: 5,
	DodgeCap:    40,
	VarianceMin: 1,
	VarianceMax: 1,
}

func fixed(id string, attack, defense, hp float64) Fighter {
	return Fighter{
		ID:   id,
		Name: id,
		Base: FixedBase(BaseStats{Attack: attack, Defense: defense, HP: hp}),
	}
}

func withTurnCap(m Mode, turns int) Mode {
	m.TurnCap = turns
	return m
}

func entriesOf(res *domain.CombatResult, action domain.CombatAction) []domain.CombatLogEntry {
	var out []domain.CombatLogEntry
	for _, e := range res.Log {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

func TestResolve_DeterministicDamage(t *testing.T) {
	// 0.99 never crits, procs or dodges
	res := Resolve(fixed("hero", 1000, 0, 100), fixed("dummy", 0, 0, 4500), flat, rng.Constant(0.99))

	assert.Equal(t, domain.SideAttacker, res.Winner)
	assert.Equal(t, "hero", res.WinnerID)
	assert.Equal(t, domain.TerminationKnockout, res.Termination)
	assert.Equal(t, 5, res.Turns)
	require.Len(t, res.Log, 9)

	var heroHits, dummyHits []int
	for _, e := range res.Log {
		if e.Actor == domain.SideAttacker {
			heroHits = append(heroHits, e.Damage)
		} else {
			dummyHits = append(dummyHits, e.Damage)
		}
	}
	assert.Equal(t, []int{1000, 1000, 1000, 1000, 1000}, heroHits)
	// the dummy is desperate after the fourth hit
	assert.Equal(t, []int{5, 5, 5, 6}, dummyHits)

	assert.Contains(t, res.Log[7].Procs, ProcDesperate)

	assert.Equal(t, 5000, res.DamageBy(domain.SideAttacker))
	assert.Equal(t, 21, res.DamageBy(domain.SideDefender))
	assert.Equal(t, 79.0, res.Combatants[domain.SideAttacker].FinalHP)
	assert.Equal(t, 100.0, res.Combatants[domain.SideAttacker].MaxHP)
	assert.Equal(t, -1000.0, res.Combatants[domain.SideDefender].FinalHP)
	assert.Equal(t, domain.ModeDuel, res.Mode)
}

func TestResolve_KnockoutEndsRoundEarly(t *testing.T) {
	res := Resolve(fixed("hero", 1000, 0, 100), fixed("slime", 500, 0, 100), flat, rng.Constant(0.99))

	assert.Equal(t, 1, res.Turns)
	assert.Len(t, res.Log, 1)
	assert.Equal(t, 100.0, res.Combatants[domain.SideAttacker].FinalHP)
}

func TestResolve_TurnCap(t *testing.T) {
	tests := []struct {
		name       string
		attackerHP float64
		defenderHP float64
		want       domain.Side
	}{
		{"tie goes to defender", 10000, 10000, domain.SideDefender},
		{"attacker ahead", 10010, 10000, domain.SideAttacker},
		{"defender ahead", 10000, 10010, domain.SideDefender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(
				fixed("a", 0, 0, tt.attackerHP),
				fixed("b", 0, 0, tt.defenderHP),
				withTurnCap(flat, 3),
				rng.Constant(0.99),
			)

			assert.Equal(t, domain.TerminationTurnCap, res.Termination)
			assert.Equal(t, 3, res.Turns)
			assert.Equal(t, tt.want, res.Winner)
			// three floor hits each
			assert.Equal(t, 15, res.DamageBy(domain.SideAttacker))
			assert.Equal(t, 15, res.DamageBy(domain.SideDefender))
		})
	}
}

func TestResolve_StunSkipsTurn(t *testing.T) {
	hero := fixed("hero", 50, 0, 100)
	hero.Buffs.Luck = 40
	brute := fixed("brute", 500, 0, 1e6)

	res := Resolve(hero, brute, withTurnCap(flat, 2), rng.Constant(0.1))

	assert.Equal(t, 2, res.Combatants[domain.SideDefender].TurnsSkipped)
	assert.Len(t, entriesOf(res, domain.ActionStunned), 2)
	assert.Equal(t, 100.0, res.Combatants[domain.SideAttacker].FinalHP)
	assert.Zero(t, res.DamageBy(domain.SideDefender))
}

func TestResolve_Counter(t *testing.T) {
	hero := fixed("hero", 100, 0, 1000)
	wall := fixed("wall", 100, 0, 1e6)
	wall.Buffs.CounterChance = 50

	res := Resolve(hero, wall, withTurnCap(flat, 1), rng.Constant(0.1))

	counters := entriesOf(res, domain.ActionCounter)
	require.Len(t, counters, 1)
	assert.Equal(t, domain.SideDefender, counters[0].Actor)
	assert.Equal(t, 50, counters[0].Damage)
	assert.Equal(t, 1, res.Combatants[domain.SideDefender].Counters)
	// counter plus the wall's own critting attack
	assert.Equal(t, 850.0, res.Combatants[domain.SideAttacker].FinalHP)
}

func TestResolve_CounterChanceIsCapped(t *testing.T) {
	wall := fixed("wall", 100, 0, 1e6)
	wall.Buffs.CounterChance = 90

	// 0.6 is above the cap but below the configured chance
	res := Resolve(fixed("hero", 100, 0, 1000), wall, withTurnCap(flat, 1), rng.Constant(0.6))
	assert.Empty(t, entriesOf(res, domain.ActionCounter))
}

func TestResolve_EveryHitIsFlatWithoutEnergy(t *testing.T) {
	res := Resolve(fixed("hero", 1000, 0, 1e5), fixed("dummy", 0, 0, 1e9), withTurnCap(flat, 10), rng.Constant(0.99))

	hits := entriesOf(res, domain.ActionAttack)
	var heroHits []int
	for _, e := range hits {
		if e.Actor == domain.SideAttacker {
			heroHits = append(heroHits, e.Damage)
			assert.NotContains(t, e.Procs, ProcEnergyBurst)
		}
	}
	require.Len(t, heroHits, 10)
	for i, d := range heroHits {
		assert.Equal(t, 1000, d, "hit %d", i+1)
	}
}

func TestResolve_EnergyStatFillsBurst(t *testing.T) {
	hero := fixed("hero", 1000, 0, 1e5)
	hero.Buffs.Energy = 25

	res := Resolve(hero, fixed("dummy", 0, 0, 1e9), withTurnCap(flat, 8), rng.Constant(0.99))

	var heroHits []int
	for _, e := range entriesOf(res, domain.ActionAttack) {
		if e.Actor == domain.SideAttacker {
			heroHits = append(heroHits, e.Damage)
		}
	}
	// four attacks of 25 energy fill the bar, which then starts over
	assert.Equal(t, []int{1000, 1000, 1000, 1500, 1000, 1000, 1000, 1500}, heroHits)
}

func TestResolve_ReactionCooldown(t *testing.T) {
	melt := setbonus.Default().Reaction(domain.ElementPyro, domain.ElementCryo)
	require.NotNil(t, melt)

	tests := []struct {
		name string
		cdr  float64
		want int
	}{
		{"two turn cooldown", 0, 2},
		{"halved cooldown", 0.5, 3},
		{"no cooldown", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hero := fixed("hero", 100, 0, 1000)
			hero.Reaction = melt
			hero.Buffs.CooldownReduction = tt.cdr

			res := Resolve(hero, fixed("dummy", 0, 0, 1e9), withTurnCap(flat, 5), rng.Constant(0.1))

			assert.Equal(t, tt.want, res.Combatants[domain.SideAttacker].ReactionProcs)
			procced := 0
			for _, e := range res.Log {
				if contains(e.Procs, melt.Name) {
					procced++
					assert.GreaterOrEqual(t, e.Damage, 200)
				}
			}
			assert.Equal(t, tt.want, procced)
		})
	}
}

func TestParticipant_ReactionCooldownCountsEveryOwnTurn(t *testing.T) {
	hero := fixed("hero", 100, 0, 1000)
	hero.Reaction = &domain.ReactionDef{Name: "Test", ProcChance: 1}
	p := NewParticipant(hero)
	p.beginCombat()

	p.beginTurn()
	require.True(t, p.reactionReady())
	p.startReactionCooldown()

	// two turns that never reach an attack, such as a stun and a dodge
	p.beginTurn()
	assert.False(t, p.reactionReady())
	p.beginTurn()
	assert.False(t, p.reactionReady())

	p.beginTurn()
	assert.True(t, p.reactionReady())
}

func TestResolve_ReactionFromSetInfo(t *testing.T) {
	hero := fixed("hero", 100, 0, 1000)
	hero.Buffs.SetInfo.Reaction = &domain.ReactionDef{Name: "Test", ProcChance: 1, DamageMultiplier: 3}

	res := Resolve(hero, fixed("dummy", 0, 0, 1e9), withTurnCap(flat, 1), rng.Constant(0.99))

	require.NotEmpty(t, res.Log)
	assert.Contains(t, res.Log[0].Procs, "Test")
	assert.Equal(t, 300, res.Log[0].Damage)
}

func TestResolve_DodgeRespectsModeCap(t *testing.T) {
	ghost := fixed("ghost", 0, 0, 1000)
	ghost.Buffs.Dodge = 100

	// 0.39 dodges under the duel cap of 40
	res := Resolve(fixed("hero", 100, 0, 1000), ghost, withTurnCap(flat, 1), rng.Constant(0.39))
	assert.Equal(t, 1, res.Combatants[domain.SideDefender].Dodges)

	// 0.45 does not
	res = Resolve(fixed("hero", 100, 0, 1000), ghost, withTurnCap(flat, 1), rng.Constant(0.45))
	assert.Zero(t, res.Combatants[domain.SideDefender].Dodges)
}

func TestResolve_Terminates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fighter := func(id string) Fighter {
			f := Fighter{
				ID:    id,
				Name:  id,
				Level: rapid.IntRange(1, 100).Draw(t, id+"_level"),
			}
			f.Buffs.Luck = rapid.Float64Range(0, 50).Draw(t, id+"_luck")
			f.Buffs.Dodge = rapid.Float64Range(0, 60).Draw(t, id+"_dodge")
			f.Buffs.CounterChance = rapid.Float64Range(0, 80).Draw(t, id+"_counter")
			f.Buffs.DefenseFlat = rapid.Float64Range(0, 2000).Draw(t, id+"_def")
			return f
		}
		mode := rapid.SampledFrom([]Mode{Duel, Adventure, Raid}).Draw(t, "mode")
		seed := rapid.Int64().Draw(t, "seed")

		res := Resolve(fighter("a"), fighter("b"), mode, NewSource(seed))

		if res.Turns < 1 || res.Turns > mode.TurnCap {
			t.Fatalf("turns %d outside [1, %d]", res.Turns, mode.TurnCap)
		}
		if res.Termination != domain.TerminationKnockout && res.Termination != domain.TerminationTurnCap {
			t.Fatalf("missing termination reason")
		}
		if res.WinnerID != res.Combatants[res.Winner].ID {
			t.Fatalf("winner id %q does not match side %v", res.WinnerID, res.Winner)
		}
		if res.Termination == domain.TerminationKnockout && res.Combatants[res.Winner.Opponent()].FinalHP > 0 {
			t.Fatalf("knockout with loser still standing")
		}
		for _, e := range res.Log {
			if (e.Action == domain.ActionAttack || e.Action == domain.ActionCounter) && e.Damage < 0 {
				t.Fatalf("negative damage in %+v", e)
			}
		}
	})
}

func TestResolve_SameSeedSameResult(t *testing.T) {
	a := Fighter{ID: "a", Name: "a", Level: 20}
	b := Fighter{ID: "b", Name: "b", Level: 22}

	first := Resolve(a, b, Duel, NewSource(42))
	second := Resolve(a, b, Duel, NewSource(42))
	assert.Equal(t, first, second)
}

func TestMode_WithDefaults(t *testing.T) {
	m := Mode{}.withDefaults()
	assert.Equal(t, Duel.TurnCap, m.TurnCap)
	assert.Equal(t, 1.0, m.DamageFloor)
	assert.Equal(t, 1.0, m.VarianceMin)
	assert.Equal(t, 1.0, m.VarianceMax)

	inverted := Mode{TurnCap: 5, DamageFloor: 3, VarianceMin: 1.2, VarianceMax: 0.8}.withDefaults()
	assert.Equal(t, 1.2, inverted.VarianceMax)
	assert.Equal(t, 3.0, inverted.DamageFloor)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
