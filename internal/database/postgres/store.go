// Package postgres implements the repository interfaces on PostgreSQL.
// Characters and items are stored as rows whose nested shapes (buffs,
// equipment, inventory, stat lines) live in JSONB columns.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
)

// Store implements repository.Game for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Game = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetCharacter loads a character by id
func (s *Store) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return getCharacter(ctx, s.db, queryGetCharacter, id)
}

// CreateCharacter inserts a new character row
func (s *Store) CreateCharacter(ctx context.Context, c *domain.Character) error {
	buffs, equipment, inventory, err := characterDocs(c)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, queryInsertCharacter,
		c.ID, c.Name, c.Level, c.XP, c.Balance, c.Wins, c.Losses,
		buffs, equipment, inventory, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrCharacterExists, c.ID)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertCharacter, err)
	}
	return nil
}

// SaveCharacter overwrites an existing character row
func (s *Store) SaveCharacter(ctx context.Context, c *domain.Character) error {
	return saveCharacter(ctx, s.db, c)
}

// GetItem loads an item by id
func (s *Store) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return getItem(ctx, s.db, queryGetItem, id)
}

// InsertItem stores an item, replacing any row with the same id
func (s *Store) InsertItem(ctx context.Context, item *domain.Item) error {
	mainStat, err := nullableJSON(item.MainStat, item.MainStat == nil)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToMarshal+": %w", "main stat", err)
	}
	subs := item.SubStats
	if subs == nil {
		subs = []domain.Stat{}
	}
	subStats, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToMarshal+": %w", "sub stats", err)
	}
	buffs, err := nullableJSON(item.Buffs, item.Buffs == nil)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToMarshal+": %w", "item buffs", err)
	}

	_, err = s.db.Exec(ctx, queryUpsertItem,
		item.ID, item.Name, item.Slot, item.Rarity, item.SetName, item.Element,
		item.Level, item.Price, mainStat, subStats, buffs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return nil
}

// UpdateItemLevel sets an item's enhancement level outside a transaction
func (s *Store) UpdateItemLevel(ctx context.Context, itemID string, level int) error {
	return updateItemLevel(ctx, s.db, itemID, level)
}

// BeginTx starts a transaction whose character and item reads take row locks
func (s *Store) BeginTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gameTx{tx: tx}, nil
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
