package repository

import (
	"context"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// GameTx groups the writes that must land together: an enhancement touches an
// item and its owner's balance, a duel touches both fighters. Rows read
// ForUpdate stay locked until Commit or Rollback.
type GameTx interface {
	Tx
	GetCharacterForUpdate(ctx context.Context, id string) (*domain.Character, error)
	GetItemForUpdate(ctx context.Context, id string) (*domain.Item, error)
	SaveCharacter(ctx context.Context, c *domain.Character) error
	UpdateItemLevel(ctx context.Context, itemID string, level int) error
}
