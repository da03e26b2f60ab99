package buffs

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

// Calculator loads a character's equipped items and aggregates the snapshot
type Calculator struct {
	items  repository.Item
	tables *setbonus.Tables
}

// NewCalculator creates a calculator reading items from the given store
func NewCalculator(items repository.Item) *Calculator {
	return NewCalculatorWithTables(items, nil)
}

// NewCalculatorWithTables creates a calculator that resolves sets against
// tables. A nil tables uses the built-in ones.
func NewCalculatorWithTables(items repository.Item, tables *setbonus.Tables) *Calculator {
	if tables == nil {
		tables = setbonus.Default()
	}
	return &Calculator{items: items, tables: tables}
}

// Calculate returns the active buffs for c. Equipped ids that no longer
// resolve are treated as empty slots; any other store error is returned.
func (calc *Calculator) Calculate(ctx context.Context, c *domain.Character) (domain.ActiveBuffs, error) {
	items, err := calc.EquippedItems(ctx, c)
	if err != nil {
		return domain.ActiveBuffs{}, err
	}
	return AggregateWith(calc.tables, c, items), nil
}

// EquippedItems loads the equipped items in slot order, skipping stale ids
func (calc *Calculator) EquippedItems(ctx context.Context, c *domain.Character) ([]*domain.Item, error) {
	ids := c.EquippedItemIDs()
	items := make([]*domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := calc.items.GetItem(ctx, id)
		if errors.Is(err, domain.ErrItemNotFound) {
			logger.FromContext(ctx).Debug("Skipping stale equipped item", "characterID", c.ID, "itemID", id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, id, err)
		}
		items = append(items, item)
	}
	return items, nil
}
