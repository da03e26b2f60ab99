package equipment

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
	"github.com/osse101/BrandishRPG_Go/internal/utils"
)

// Generate rolls a new item. The set name is optional; when given it must
// name a known set and the item takes that set's element.
//
// Random draws happen in a fixed order (main stat, sub-stat picks, sub-stat
// values, price) so a seeded source always yields the same item.
func Generate(slot domain.Slot, rarity domain.Rarity, setName string, src rng.Source) (*domain.Item, error) {
	return GenerateWith(setbonus.Default(), slot, rarity, setName, src)
}

// GenerateWith is Generate against a specific set of tables
func GenerateWith(tables *setbonus.Tables, slot domain.Slot, rarity domain.Rarity, setName string, src rng.Source) (*domain.Item, error) {
	mainType, ok := MainStatFor(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}
	if !rarity.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRarity, rarity)
	}
	if setName != "" && !tables.HasSet(setName) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSet, setName)
	}

	factor := rarityStatFactor[rarity]
	item := &domain.Item{
		ID:       uuid.NewString(),
		Name:     itemName(slot, rarity, setName),
		Slot:     slot,
		Rarity:   rarity,
		SetName:  setName,
		MainStat: &domain.Stat{Type: mainType, Value: rollStat(mainType, factor, 1, src)},
		SubStats: []domain.Stat{},
	}
	if setName != "" {
		item.Element = tables.SetElement(setName)
	}

	for _, t := range pickSubStats(mainType, raritySubStatCount[rarity], src) {
		item.SubStats = append(item.SubStats, domain.Stat{
			Type:  t,
			Value: rollStat(t, factor, SubStatRangeFactor, src),
		})
	}

	item.Price = rollPrice(rarity, len(item.SubStats), src)
	return item, nil
}

func rollStat(t domain.StatType, rarityFactor, rangeFactor float64, src rng.Source) float64 {
	r := statRanges[t]
	v := rng.Uniform(src, r.Min*rangeFactor, r.Max*rangeFactor)
	return utils.Round1(v * rarityFactor)
}

// pickSubStats draws n distinct types from the pool, excluding the main stat,
// with a partial Fisher-Yates shuffle.
func pickSubStats(mainType domain.StatType, n int, src rng.Source) []domain.StatType {
	pool := make([]domain.StatType, 0, len(subStatPool))
	for _, t := range subStatPool {
		if t != mainType {
			pool = append(pool, t)
		}
	}
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func rollPrice(rarity domain.Rarity, subCount int, src rng.Source) int64 {
	base := float64(rarityBasePrice[rarity])
	variance := rng.Uniform(src, PriceVarianceMin, PriceVarianceMax)
	return int64(base * (1 + PricePerSubStatBonus*float64(subCount)) * variance)
}

// itemName renders e.g. "Crimson Witch Weapon" or "Rare Chest"
func itemName(slot domain.Slot, rarity domain.Rarity, setName string) string {
	caser := cases.Title(language.English)
	if setName != "" {
		return setbonus.DisplayName(setName) + " " + caser.String(string(slot))
	}
	// Title also lowercases, so "LEGENDARY" becomes "Legendary"
	return caser.String(string(rarity)) + " " + caser.String(string(slot))
}
