package equipment

import "github.com/osse101/BrandishRPG_Go/internal/domain"

// ==================== Level Scaling ====================

// Per-level bonus percent by level band. Bonuses are cumulative.
const (
	LevelBonusLow  = 2 // levels 1-5
	LevelBonusMid  = 3 // levels 6-10
	LevelBonusHigh = 4 // levels 11-15

	LevelBandLowMax = 5
	LevelBandMidMax = 10
)

// ==================== Generation ====================

// StatRange is the Common-rarity roll range for a main stat.
// Sub-stats roll half of it.
type StatRange struct {
	Min float64
	Max float64
}

// SubStatRangeFactor scales a main-stat range down for sub-stat rolls
const SubStatRangeFactor = 0.5

// Price variance applied after rarity and sub-stat scaling
const (
	PriceVarianceMin     = 0.9
	PriceVarianceMax     = 1.1
	PricePerSubStatBonus = 0.1
)

var mainStatBySlot = map[domain.Slot]domain.StatType{
	domain.SlotWeapon:    domain.StatAttack,
	domain.SlotHead:      domain.StatCritDMG,
	domain.SlotChest:     domain.StatDefense,
	domain.SlotHands:     domain.StatCritRate,
	domain.SlotFeet:      domain.StatHP,
	domain.SlotAccessory: domain.StatAttackPercent,
}

// subStatPool lists the stat types a sub-stat may roll, in draw order
var subStatPool = []domain.StatType{
	domain.StatAttack,
	domain.StatDefense,
	domain.StatHP,
	domain.StatAttackPercent,
	domain.StatDefensePercent,
	domain.StatHPPercent,
	domain.StatCritRate,
	domain.StatCritDMG,
	domain.StatEnergy,
	domain.StatLuck,
}

var statRanges = map[domain.StatType]StatRange{
	domain.StatAttack:         {10, 20},
	domain.StatDefense:        {8, 16},
	domain.StatHP:             {50, 100},
	domain.StatAttackPercent:  {2, 4},
	domain.StatDefensePercent: {2, 4},
	domain.StatHPPercent:      {2, 4},
	domain.StatCritRate:       {1, 3},
	domain.StatCritDMG:        {3, 6},
	domain.StatEnergy:         {2, 5},
	domain.StatLuck:           {1, 2},
}

var rarityStatFactor = map[domain.Rarity]float64{
	domain.RarityCommon:    1.0,
	domain.RarityUncommon:  1.5,
	domain.RarityRare:      2.2,
	domain.RarityEpic:      3.2,
	domain.RarityLegendary: 4.5,
}

var raritySubStatCount = map[domain.Rarity]int{
	domain.RarityCommon:    0,
	domain.RarityUncommon:  1,
	domain.RarityRare:      2,
	domain.RarityEpic:      3,
	domain.RarityLegendary: 4,
}

var rarityBasePrice = map[domain.Rarity]int64{
	domain.RarityCommon:    100,
	domain.RarityUncommon:  250,
	domain.RarityRare:      600,
	domain.RarityEpic:      1500,
	domain.RarityLegendary: 4000,
}

// ==================== Enhancement ====================

// Success rate in percent keyed by the level before the attempt
const (
	EnhanceRateSafe      = 100 // 0-10
	EnhanceRateRisky     = 80  // 11-12
	EnhanceRateDangerous = 60  // 13-14
	EnhanceRateMax       = 40  // 15, unreachable behind the max level check

	EnhanceSafeMaxLevel  = 10
	EnhanceRiskyMaxLevel = 12
	EnhanceDangerMax     = 14
)

var rarityEnhanceCost = map[domain.Rarity]int64{
	domain.RarityCommon:    50,
	domain.RarityUncommon:  100,
	domain.RarityRare:      200,
	domain.RarityEpic:      400,
	domain.RarityLegendary: 800,
}

// Lock keys for items carry a prefix so they never collide with character IDs
const itemLockPrefix = "item:"

// ==================== Cache ====================

// Item cache defaults
const (
	DefaultCacheSize   = 1000
	CacheSchemaVersion = "1.0"
)

// ==================== Error Messages ====================

const (
	ErrMsgGetCharacterFailed  = "failed to get character: %w"
	ErrMsgGetItemFailed       = "failed to get item: %w"
	ErrMsgInsertItemFailed    = "failed to insert item: %w"
	ErrMsgSaveCharacterFailed = "failed to save character: %w"
	ErrMsgUpdateItemFailed    = "failed to update item level: %w"
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed      = "failed to commit transaction: %w"
	ErrMsgGenerateFailed      = "failed to generate item: %w"
	ErrMsgNeedGoldFmt         = "need %d gold, have %d"
	ErrMsgNegativeLevelFmt    = "item level %d is negative"
	ErrMsgSlotMismatchFmt     = "item %s belongs in slot %s"
)
