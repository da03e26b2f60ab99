package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// querier is the subset of pgxpool.Pool and pgx.Tx the store needs
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

func getCharacter(ctx context.Context, q querier, query, id string) (*domain.Character, error) {
	var (
		c                         domain.Character
		buffs, equipment, invJSON []byte
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Level, &c.XP, &c.Balance, &c.Wins, &c.Losses,
		&buffs, &equipment, &invJSON, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}

	if err := json.Unmarshal(buffs, &c.Buffs); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "buffs", err)
	}
	if err := json.Unmarshal(equipment, &c.Equipment); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "equipment", err)
	}
	if err := json.Unmarshal(invJSON, &c.Inventory); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "inventory", err)
	}
	if c.Equipment == nil {
		c.Equipment = make(map[domain.Slot]string)
	}
	if c.Inventory == nil {
		c.Inventory = []domain.InventoryEntry{}
	}
	return &c, nil
}

// characterDocs marshals the JSONB columns of a character
func getItem(ctx context.Context, q querier, query, id string) (*domain.Item, error) {
	var (
		item                      domain.Item
		mainStat, subStats, buffs []byte
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Slot, &item.Rarity, &item.SetName, &item.Element,
		&item.Level, &item.Price, &mainStat, &subStats, &buffs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}

	if len(mainStat) > 0 {
		if err := json.Unmarshal(mainStat, &item.MainStat); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "main stat", err)
		}
	}
	if len(subStats) > 0 {
		if err := json.Unmarshal(subStats, &item.SubStats); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "sub stats", err)
		}
	}
	if len(buffs) > 0 {
		if err := json.Unmarshal(buffs, &item.Buffs); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToUnmarshal+": %w", "item buffs", err)
		}
	}
	return &item, nil
}

func characterDocs(c *domain.Character) (buffs, equipment, inventory []byte, err error) {
	if buffs, err = json.Marshal(c.Buffs); err != nil {
		return nil, nil, nil, fmt.Errorf(ErrMsgFailedToMarshal+": %w", "buffs", err)
	}
	equip := c.Equipment
	if equip == nil {
		equip = map[domain.Slot]string{}
	}
	if equipment, err = json.Marshal(equip); err != nil {
		return nil, nil, nil, fmt.Errorf(ErrMsgFailedToMarshal+": %w", "equipment", err)
	}
	inv := c.Inventory
	if inv == nil {
		inv = []domain.InventoryEntry{}
	}
	if inventory, err = json.Marshal(inv); err != nil {
		return nil, nil, nil, fmt.Errorf(ErrMsgFailedToMarshal+": %w", "inventory", err)
	}
	return buffs, equipment, inventory, nil
}

func saveCharacter(ctx context.Context, q querier, c *domain.Character) error {
	buffs, equipment, inventory, err := characterDocs(c)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, queryUpdateCharacter,
		c.ID, c.Name, c.Level, c.XP, c.Balance, c.Wins, c.Losses, buffs, equipment, inventory)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, c.ID)
	}
	return nil
}

func updateItemLevel(ctx context.Context, q querier, itemID string, level int) error {
	tag, err := q.Exec(ctx, queryUpdateItemLevel, itemID, level)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItemLevel, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// nullableJSON marshals v, returning nil for a nil pointer or map so the column stays NULL
func nullableJSON(v any, isNil bool) ([]byte, error) {
	if isNil {
		return nil, nil
	}
	return json.Marshal(v)
}
