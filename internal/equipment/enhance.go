package equipment

import (
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
)

// EnhanceResult is the outcome of one enhancement attempt.
// Reason is set when the attempt was refused; nothing is charged then.
type EnhanceResult struct {
	ItemID   string `json:"item_id"`
	Success  bool   `json:"success"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Cost     int64  `json:"cost"`
	Balance  int64  `json:"balance"`
	Reason   error  `json:"-"`
}

// Attempted reports whether the attempt was made and charged
func (r EnhanceResult) Attempted() bool {
	return r.Reason == nil
}

// SuccessRate returns the success chance in percent for an attempt made
// at the given current level
func SuccessRate(level int) float64 {
	switch {
	case level <= EnhanceSafeMaxLevel:
		return EnhanceRateSafe
	case level <= EnhanceRiskyMaxLevel:
		return EnhanceRateRisky
	case level <= EnhanceDangerMax:
		return EnhanceRateDangerous
	default:
		return EnhanceRateMax
	}
}

// EnhanceCost returns the gold charged for an attempt at the given level
func EnhanceCost(rarity domain.Rarity, level int) int64 {
	return rarityEnhanceCost[rarity] * int64(level+1)
}

// Enhance rolls one enhancement attempt against the given balance. It does
// not modify the item; the caller applies NewLevel and Balance.
// Max-level items and unaffordable attempts are refused without charge.
func Enhance(item *domain.Item, balance int64, src rng.Source) EnhanceResult {
	res := EnhanceResult{
		ItemID:   item.ID,
		OldLevel: item.Level,
		NewLevel: item.Level,
		Balance:  balance,
	}

	if item.Level < 0 {
		res.Reason = fmt.Errorf("%w: "+ErrMsgNegativeLevelFmt, domain.ErrInvalidInput, item.Level)
		return res
	}
	if item.Level >= domain.MaxItemLevel {
		res.Reason = domain.ErrMaxLevel
		return res
	}
	if !item.Rarity.IsValid() {
		res.Reason = fmt.Errorf("%w: %s", domain.ErrInvalidRarity, item.Rarity)
		return res
	}

	cost := EnhanceCost(item.Rarity, item.Level)
	if balance < cost {
		res.Reason = fmt.Errorf("%w: "+ErrMsgNeedGoldFmt, domain.ErrInsufficientFunds, cost, balance)
		return res
	}

	res.Cost = cost
	res.Balance = balance - cost
	if rng.Chance(src, SuccessRate(item.Level)) {
		res.Success = true
		res.NewLevel = item.Level + 1
	}
	return res
}
