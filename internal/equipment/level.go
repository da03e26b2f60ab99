package equipment

import "github.com/osse101/BrandishRPG_Go/internal/domain"

// LevelBonusPercent returns the cumulative level bonus in percent:
// +2 per level for 1-5, +3 for 6-10 and +4 for 11-15.
// Levels outside [0, MaxItemLevel] are clamped; rejecting them is the
// job of the enhancement operation.
func LevelBonusPercent(level int) int {
	if level > domain.MaxItemLevel {
		level = domain.MaxItemLevel
	}
	bonus := 0
	for i := 1; i <= level; i++ {
		switch {
		case i <= LevelBandLowMax:
			bonus += LevelBonusLow
		case i <= LevelBandMidMax:
			bonus += LevelBonusMid
		default:
			bonus += LevelBonusHigh
		}
	}
	return bonus
}

// LevelMultiplier returns 1 + LevelBonusPercent(level)/100
func LevelMultiplier(level int) float64 {
	return 1 + float64(LevelBonusPercent(level))/100
}

// MainStatFor returns the main stat type rolled by items in slot
func MainStatFor(slot domain.Slot) (domain.StatType, bool) {
	t, ok := mainStatBySlot[slot]
	return t, ok
}

// EffectiveStat sums the level-scaled main stat and every sub-stat of the
// requested type. Legacy items carry no typed stats and return 0.
func EffectiveStat(item *domain.Item, stat domain.StatType) float64 {
	if item == nil {
		return 0
	}
	base := 0.0
	if item.MainStat != nil && item.MainStat.Type == stat {
		base += item.MainStat.Value
	}
	for _, sub := range item.SubStats {
		if sub.Type == stat {
			base += sub.Value
		}
	}
	return base * LevelMultiplier(item.Level)
}
