// Package buffs folds legacy character buffs, equipped items and set bonuses
// into one clamped ActiveBuffs snapshot.
package buffs

import (
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
	"github.com/osse101/BrandishRPG_Go/internal/utils"
)

// NormalizeLegacy converts a legacy percentage value to a fraction.
// Values strictly greater than 1 are whole percents (25 -> 0.25); 1.0 and
// below are already fractions.
func NormalizeLegacy(v float64) float64 {
	if v > LegacyPercentThreshold {
		return v / 100
	}
	return v
}

// CanonicalLegacy returns the record with every percentage field rewritten
// to the fraction scale. The crit field is points and is left alone.
func CanonicalLegacy(b domain.LegacyBuffs) domain.LegacyBuffs {
	for _, rule := range legacyRules {
		if rule.percent {
			p := rule.value(&b)
			*p = NormalizeLegacy(*p)
		}
	}
	return b
}

// Aggregate computes the snapshot for a character wearing items, using the
// embedded set tables. items should be in slot order; nil entries are skipped.
func Aggregate(c *domain.Character, items []*domain.Item) domain.ActiveBuffs {
	return AggregateWith(setbonus.Default(), c, items)
}

// AggregateWith is Aggregate against explicit set tables
func AggregateWith(tables *setbonus.Tables, c *domain.Character, items []*domain.Item) domain.ActiveBuffs {
	var out domain.ActiveBuffs

	if c != nil {
		addLegacy(&out, c.Buffs)
	}

	equipped := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		if item != nil {
			equipped = append(equipped, item)
		}
	}

	bundle := tables.Resolve(equipped)
	out.SetInfo = bundle.SetInfo()

	for _, item := range equipped {
		for _, contrib := range equipment.Contributions(item) {
			out.Add(contrib.Field, contrib.Value)
		}
	}

	for _, contrib := range bundle.Contributions() {
		out.Add(contrib.Field, contrib.Value)
	}

	Clamp(&out)
	return out
}

func addLegacy(out *domain.ActiveBuffs, legacy domain.LegacyBuffs) {
	for _, rule := range legacyRules {
		v := *rule.value(&legacy)
		if rule.percent {
			v = NormalizeLegacy(v)
		}
		out.Add(rule.field, utils.Clamp(v, rule.bound.Min, rule.bound.Max))
	}
}

// Clamp applies the final hard bounds in place
func Clamp(b *domain.ActiveBuffs) {
	for _, c := range FinalClamps {
		b.Set(c.Field, utils.Clamp(b.Get(c.Field), c.Bound.Min, c.Bound.Max))
	}
}
