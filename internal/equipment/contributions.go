package equipment

import (
	"sort"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Shape tags which of the two persisted item formats a record uses
type Shape int

const (
	// ShapeStructured items carry a main stat and typed sub-stats
	ShapeStructured Shape = iota
	// ShapeLegacy items carry only a free-form buffs map
	ShapeLegacy
)

// ShapeOf classifies an item record
func ShapeOf(item *domain.Item) Shape {
	if item.IsLegacy() {
		return ShapeLegacy
	}
	return ShapeStructured
}

// statRoute says where a typed stat lands in ActiveBuffs and how it is scaled
type statRoute struct {
	field   domain.BuffField
	percent bool
}

// Percent stats are stored as whole percents on items and as fractions in
// ActiveBuffs. Point stats are stored in their final unit.
var statRoutes = map[domain.StatType]statRoute{
	domain.StatAttack:         {domain.BuffAttackFlat, false},
	domain.StatDefense:        {domain.BuffDefenseFlat, false},
	domain.StatHP:             {domain.BuffHPFlat, false},
	domain.StatAttackPercent:  {domain.BuffAttack, true},
	domain.StatDefensePercent: {domain.BuffDefense, true},
	domain.StatHPPercent:      {domain.BuffHPPercent, true},
	domain.StatCritRate:       {domain.BuffCritChance, false},
	domain.StatCritDMG:        {domain.BuffCritDMG, false},
	domain.StatEnergy:         {domain.BuffEnergy, false},
	domain.StatLuck:           {domain.BuffLuck, false},
}

// Contributions resolves either item shape into flat ActiveBuffs additions.
// Structured stats are level-scaled and routed by type. Legacy buffs are
// added by key as stored; keys that name no ActiveBuffs field are dropped.
// The output order is stable for a given item.
func Contributions(item *domain.Item) []domain.StatContribution {
	if item == nil {
		return nil
	}
	if ShapeOf(item) == ShapeLegacy {
		return legacyContributions(item.Buffs)
	}

	mult := LevelMultiplier(item.Level)
	out := make([]domain.StatContribution, 0, 1+len(item.SubStats))
	if item.MainStat != nil {
		if c, ok := routeStat(*item.MainStat, mult); ok {
			out = append(out, c)
		}
	}
	for _, sub := range item.SubStats {
		if c, ok := routeStat(sub, mult); ok {
			out = append(out, c)
		}
	}
	return out
}

func routeStat(stat domain.Stat, mult float64) (domain.StatContribution, bool) {
	route, ok := statRoutes[stat.Type]
	if !ok {
		return domain.StatContribution{}, false
	}
	value := stat.Value * mult
	if route.percent {
		value /= 100
	}
	return domain.StatContribution{Field: route.field, Value: value}, true
}

func legacyContributions(buffs map[string]float64) []domain.StatContribution {
	keys := make([]string, 0, len(buffs))
	for k := range buffs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]domain.StatContribution, 0, len(keys))
	for _, k := range keys {
		field := domain.BuffField(k)
		if !field.IsValid() {
			continue
		}
		out = append(out, domain.StatContribution{Field: field, Value: buffs[k]})
	}
	return out
}
