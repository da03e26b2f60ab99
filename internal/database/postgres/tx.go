package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// gameTx wraps a pgx.Tx. Rows read through it stay locked until Commit or
// Rollback.
type gameTx struct {
	tx pgx.Tx
}

func (t *gameTx) GetCharacterForUpdate(ctx context.Context, id string) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, queryGetCharacterForUpdate, id)
}

func (t *gameTx) GetItemForUpdate(ctx context.Context, id string) (*domain.Item, error) {
	return getItem(ctx, t.tx, queryGetItemForUpdate, id)
}

func (t *gameTx) SaveCharacter(ctx context.Context, c *domain.Character) error {
	return saveCharacter(ctx, t.tx, c)
}

func (t *gameTx) UpdateItemLevel(ctx context.Context, itemID string, level int) error {
	return updateItemLevel(ctx, t.tx, itemID, level)
}

func (t *gameTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *gameTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
