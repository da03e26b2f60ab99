package equipment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

func TestGenerate_Validation(t *testing.T) {
	src := rng.New(1)

	tests := []struct {
		name    string
		slot    domain.Slot
		rarity  domain.Rarity
		set     string
		wantErr error
	}{
		{"bad slot", "belt", domain.RarityRare, "", domain.ErrInvalidSlot},
		{"bad rarity", domain.SlotWeapon, "MYTHIC", "", domain.ErrInvalidRarity},
		{"unknown set", domain.SlotWeapon, domain.RarityRare, "paper_crown", domain.ErrUnknownSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Generate(tt.slot, tt.rarity, tt.set, src)
			assert.Nil(t, item)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGenerate_SubStatCountByRarity(t *testing.T) {
	tests := map[domain.Rarity]int{
		domain.RarityCommon:    0,
		domain.RarityUncommon:  1,
		domain.RarityRare:      2,
		domain.RarityEpic:      3,
		domain.RarityLegendary: 4,
	}
	src := rng.New(42)

	for rarity, want := range tests {
		item, err := Generate(domain.SlotChest, rarity, "", src)
		require.NoError(t, err)
		assert.Len(t, item.SubStats, want, "rarity %s", rarity)
	}
}

func TestGenerate_SetItem(t *testing.T) {
	item, err := Generate(domain.SlotWeapon, domain.RarityEpic, "crimson_witch", rng.New(7))
	require.NoError(t, err)

	assert.Equal(t, "Crimson Witch Weapon", item.Name)
	assert.Equal(t, domain.ElementPyro, item.Element)
	assert.Equal(t, "crimson_witch", item.SetName)
	assert.Equal(t, 0, item.Level)
	assert.NotEmpty(t, item.ID)
}

func TestGenerate_PlainName(t *testing.T) {
	item, err := Generate(domain.SlotFeet, domain.RarityLegendary, "", rng.New(7))
	require.NoError(t, err)
	assert.Equal(t, "Legendary Feet", item.Name)
	assert.Equal(t, domain.ElementNone, item.Element)
}

func TestGenerate_FixedSourceBounds(t *testing.T) {
	// A source pinned at 0 rolls every range minimum
	item, err := Generate(domain.SlotWeapon, domain.RarityRare, "", rng.Constant(0))
	require.NoError(t, err)

	assert.Equal(t, domain.StatAttack, item.MainStat.Type)
	assert.Equal(t, 22.0, item.MainStat.Value) // 10 * 2.2
	require.Len(t, item.SubStats, 2)
	// price = 600 * 1.2 * 0.9
	assert.Equal(t, int64(648), item.Price)
}

func TestGenerate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slot := rapid.SampledFrom(domain.AllSlots).Draw(t, "slot")
		rarity := rapid.SampledFrom(domain.AllRarities).Draw(t, "rarity")
		seed := rapid.Int64().Draw(t, "seed")

		item, err := Generate(slot, rarity, "", rng.New(seed))
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		seen := map[domain.StatType]bool{item.MainStat.Type: true}
		for _, sub := range item.SubStats {
			if seen[sub.Type] {
				t.Fatalf("duplicate stat type %s", sub.Type)
			}
			seen[sub.Type] = true

			r := statRanges[sub.Type]
			factor := rarityStatFactor[rarity]
			if sub.Value < r.Min*SubStatRangeFactor*factor-0.05 || sub.Value > r.Max*SubStatRangeFactor*factor+0.05 {
				t.Fatalf("sub-stat %s=%v out of range", sub.Type, sub.Value)
			}
		}

		// round trip: at level 0 the effective value is the stored base
		if got := EffectiveStat(item, item.MainStat.Type); got != item.MainStat.Value {
			t.Fatalf("effective %v != base %v", got, item.MainStat.Value)
		}

		base := float64(rarityBasePrice[rarity]) * (1 + PricePerSubStatBonus*float64(len(item.SubStats)))
		if float64(item.Price) < base*PriceVarianceMin-1 || float64(item.Price) > base*PriceVarianceMax {
			t.Fatalf("price %d out of range for base %v", item.Price, base)
		}
	})
}

func TestGenerateWith_OperatorTables(t *testing.T) {
	tables := &setbonus.Tables{Sets: map[string]setbonus.SetDef{
		"storm_caller": {Element: domain.ElementElectro},
	}}

	item, err := GenerateWith(tables, domain.SlotHands, domain.RarityEpic, "storm_caller", rng.New(3))
	require.NoError(t, err)
	assert.Equal(t, domain.ElementElectro, item.Element)

	_, err = GenerateWith(tables, domain.SlotHands, domain.RarityEpic, "crimson_witch", rng.New(3))
	assert.ErrorIs(t, err, domain.ErrUnknownSet)
}
