package repository

import (
	"context"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Item defines the interface for equipment persistence.
// GetItem returns domain.ErrItemNotFound for unknown ids.
type Item interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) error
	UpdateItemLevel(ctx context.Context, itemID string, level int) error
}
