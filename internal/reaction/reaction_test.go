package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

func reactionFor(t *testing.T, a, b domain.Element) *domain.ReactionDef {
	t.Helper()
	def := setbonus.Default().Reaction(a, b)
	require.NotNil(t, def)
	return def
}

func TestApply_NilDefinition(t *testing.T) {
	res := Apply(120, nil, 50, 1, rng.Constant(0))
	assert.Equal(t, Result{Damage: 120}, res)
}

func TestApply_FailedProcLeavesDamage(t *testing.T) {
	melt := reactionFor(t, domain.ElementPyro, domain.ElementCryo)

	res := Apply(100, melt, 50, 0, rng.Constant(0.15))
	assert.False(t, res.Procced)
	assert.Equal(t, 100.0, res.Damage)
	assert.Empty(t, res.Messages)
	assert.Equal(t, Effects{}, res.Effects)
}

func TestApply_ProcBonusRaisesChance(t *testing.T) {
	melt := reactionFor(t, domain.ElementPyro, domain.ElementCryo)

	res := Apply(100, melt, 50, 0.30, rng.Constant(0.40))
	assert.True(t, res.Procced)
	assert.Equal(t, 200.0, res.Damage)
	assert.Equal(t, "Melt", res.Name)
}

func TestApply_DefaultProcChance(t *testing.T) {
	def := &domain.ReactionDef{Name: "Test", DamageMultiplier: 3}

	assert.True(t, Apply(10, def, 0, 0, rng.Constant(0.149)).Procced)
	assert.False(t, Apply(10, def, 0, 0, rng.Constant(0.15)).Procced)
}

func TestApply_Effects(t *testing.T) {
	const attack = 200.0

	tests := []struct {
		name       string
		a, b       domain.Element
		src        rng.Source
		wantDamage float64
		check      func(t *testing.T, e Effects)
	}{
		{
			name:       "overload adds bonus damage and stuns",
			a:          domain.ElementElectro,
			b:          domain.ElementPyro,
			src:        rng.NewSequence(0, 0.1),
			wantDamage: 100 + attack*1.2,
			check: func(t *testing.T, e Effects) {
				assert.Equal(t, 1, e.StunTurns)
			},
		},
		{
			name:       "overload stun roll can miss",
			a:          domain.ElementElectro,
			b:          domain.ElementPyro,
			src:        rng.NewSequence(0, 0.5),
			wantDamage: 100 + attack*1.2,
			check: func(t *testing.T, e Effects) {
				assert.Equal(t, 0, e.StunTurns)
			},
		},
		{
			name:       "superconduct lowers defense",
			a:          domain.ElementCryo,
			b:          domain.ElementElectro,
			src:        rng.Constant(0),
			wantDamage: 120,
			check: func(t *testing.T, e Effects) {
				require.NotNil(t, e.DefenseDown)
				assert.Equal(t, domain.TimedEffect{Amount: 0.4, Duration: 3}, *e.DefenseDown)
			},
		},
		{
			name:       "electro-charged scales dot with attack",
			a:          domain.ElementHydro,
			b:          domain.ElementElectro,
			src:        rng.NewSequence(0, 0.9),
			wantDamage: 100,
			check: func(t *testing.T, e Effects) {
				require.NotNil(t, e.DamageOverTime)
				assert.Equal(t, attack*0.25, e.DamageOverTime.Amount)
				assert.Equal(t, 2, e.DamageOverTime.Duration)
			},
		},
		{
			name:       "crystallize cryo shields and reflects",
			a:          domain.ElementGeo,
			b:          domain.ElementCryo,
			src:        rng.Constant(0),
			wantDamage: 100,
			check: func(t *testing.T, e Effects) {
				require.NotNil(t, e.Shield)
				assert.Equal(t, 0.3, e.Shield.Amount)
				assert.Equal(t, 0.15, e.ReflectPercent)
				assert.Equal(t, ReflectDuration, e.ReflectTurns)
			},
		},
		{
			name:       "crystallize pyro buffs attack",
			a:          domain.ElementGeo,
			b:          domain.ElementPyro,
			src:        rng.Constant(0),
			wantDamage: 100,
			check: func(t *testing.T, e Effects) {
				require.NotNil(t, e.Buff)
				assert.Equal(t, domain.BuffStatAttack, e.Buff.Stat)
				assert.Equal(t, 3, e.Buff.Duration)
			},
		},
		{
			name:       "swirl hydro heals",
			a:          domain.ElementAnemo,
			b:          domain.ElementHydro,
			src:        rng.Constant(0),
			wantDamage: 100,
			check: func(t *testing.T, e Effects) {
				assert.Equal(t, 0.15, e.HealPercent)
			},
		},
		{
			name:       "swirl electro grants energy",
			a:          domain.ElementAnemo,
			b:          domain.ElementElectro,
			src:        rng.Constant(0),
			wantDamage: 100 + attack*0.5,
			check: func(t *testing.T, e Effects) {
				assert.Equal(t, 15.0, e.Energy)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Apply(100, reactionFor(t, tt.a, tt.b), attack, 0, tt.src)

			require.True(t, res.Procced)
			assert.InDelta(t, tt.wantDamage, res.Damage, 1e-9)
			assert.NotEmpty(t, res.Messages)
			tt.check(t, res.Effects)
		})
	}
}

func TestApply_EveryReactionDoesSomething(t *testing.T) {
	for key, def := range setbonus.Default().Reactions {
		res := Apply(100, def, 100, 0, rng.Constant(0))

		require.True(t, res.Procced, key)
		changed := res.Damage != 100 || res.Effects != (Effects{})
		assert.True(t, changed, "reaction %s had no effect", key)
	}
}
