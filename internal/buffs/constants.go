package buffs

import "github.com/osse101/BrandishRPG_Go/internal/domain"

// LegacyPercentThreshold separates the two legacy scales. Stored values
// strictly above it are whole percents; 1.0 itself already means 100%.
const LegacyPercentThreshold = 1.0

// Bound is an inclusive [Min, Max] range
type Bound struct {
	Min float64
	Max float64
}

// legacyRule routes one field of the legacy record into the snapshot
type legacyRule struct {
	field   domain.BuffField
	bound   Bound
	percent bool // point fields are never rescaled
	value   func(*domain.LegacyBuffs) *float64
}

// legacyRules walks the legacy record in declaration order
var legacyRules = []legacyRule{
	{domain.BuffAttack, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.AttackBoost }},
	{domain.BuffDefense, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.DefenseBoost }},
	{domain.BuffMagic, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.MagicBoost }},
	{domain.BuffMagicDefense, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.MagicDefenseBoost }},
	{domain.BuffHealingBoost, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.HealingBoost }},
	{domain.BuffXPBoost, Bound{0, 10}, true, func(b *domain.LegacyBuffs) *float64 { return &b.XPBoost }},
	{domain.BuffLuck, Bound{0, 5}, true, func(b *domain.LegacyBuffs) *float64 { return &b.LuckBoost }},
	{domain.BuffLootBoost, Bound{0, 10}, true, func(b *domain.LegacyBuffs) *float64 { return &b.LootBoost }},
	{domain.BuffFindRateBoost, Bound{0, 10}, true, func(b *domain.LegacyBuffs) *float64 { return &b.FindRateBoost }},
	{domain.BuffCooldownReduction, Bound{0, 1}, true, func(b *domain.LegacyBuffs) *float64 { return &b.CooldownReduction }},
	{domain.BuffCritChance, Bound{0, 100}, false, func(b *domain.LegacyBuffs) *float64 { return &b.CritChance }},
}

// FinalClamps are applied after every source has been added. They are hard
// ceilings on the snapshot no matter how many items or sets contribute.
var FinalClamps = []struct {
	Field domain.BuffField
	Bound Bound
}{
	{domain.BuffAttack, Bound{0, 10}},
	{domain.BuffDefense, Bound{0, 10}},
	{domain.BuffHPPercent, Bound{0, 10}},
	{domain.BuffCritChance, Bound{0, 100}},
	{domain.BuffCritDMG, Bound{0, 500}},
	{domain.BuffDodge, Bound{0, 50}},
	{domain.BuffLifesteal, Bound{0, 100}},
	{domain.BuffAttackFlat, Bound{0, 10000}},
	{domain.BuffDefenseFlat, Bound{0, 10000}},
	{domain.BuffHPFlat, Bound{0, 50000}},
	{domain.BuffCooldownReduction, Bound{0, 1}},
}

// Error messages
const (
	ErrMsgGetItemFailedFmt = "failed to get item %s: %w"
)
