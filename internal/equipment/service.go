package equipment

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/setbonus"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// invalidator is implemented by item stores that cache reads
type invalidator interface {
	Invalidate(itemID string)
}

// Service defines the interface for equipment operations
type Service interface {
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	Generate(ctx context.Context, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error)
	GenerateFor(ctx context.Context, characterID string, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error)
	Enhance(ctx context.Context, characterID, itemID string) (*EnhanceResult, error)
	Equip(ctx context.Context, characterID, itemID string) (*domain.Character, error)
	Unequip(ctx context.Context, characterID string, slot domain.Slot) (*domain.Character, error)
}

type service struct {
	repo        repository.Game
	items       repository.Item
	lockManager *concurrency.LockManager
	publisher   EventPublisher
	rnd         rng.Source
	tables      *setbonus.Tables
}

// NewService creates a new equipment service. items is the read path for
// item documents and may be a cache in front of repo; nil means repo.
func NewService(repo repository.Game, items repository.Item, lockManager *concurrency.LockManager, publisher EventPublisher, rnd rng.Source) Service {
	return NewServiceWithTables(repo, items, lockManager, publisher, rnd, nil)
}

// NewServiceWithTables is NewService generating against the given set tables.
// nil means the built-in tables.
func NewServiceWithTables(repo repository.Game, items repository.Item, lockManager *concurrency.LockManager, publisher EventPublisher, rnd rng.Source, tables *setbonus.Tables) Service {
	if tables == nil {
		tables = setbonus.Default()
	}
	if items == nil {
		items = repo
	}
	return &service{
		repo:        repo,
		items:       items,
		lockManager: lockManager,
		publisher:   publisher,
		rnd:         rnd,
		tables:      tables,
	}
}

// GetItem returns one item document
func (s *service) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	return item, nil
}

// Generate rolls and stores a new unowned item
func (s *service) Generate(ctx context.Context, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Generate called", "slot", slot, "rarity", rarity, "set", setName)

	item, err := s.generate(ctx, slot, rarity, setName)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewItemGeneratedEvent(item))
	log.Info("Item generated", "itemID", item.ID, "name", item.Name)
	return item, nil
}

// GenerateFor rolls a new item and places it in the character's inventory
func (s *service) GenerateFor(ctx context.Context, characterID string, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("GenerateFor called", "characterID", characterID, "slot", slot, "rarity", rarity, "set", setName)

	unlock := s.lockManager.LockAll(characterID)
	defer unlock()

	// Fail before rolling if the character is unknown
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}

	item, err := s.generate(ctx, slot, rarity, setName)
	if err != nil {
		return nil, err
	}

	err = s.withCharacterTx(ctx, characterID, func(c *domain.Character) error {
		c.AddInventory(item.ID, 1)
		return nil
	})
	if err != nil {
		log.Error("Failed to grant generated item", "error", err, "characterID", characterID, "itemID", item.ID)
		return nil, err
	}

	s.publish(ctx, event.NewItemGeneratedEvent(item))
	log.Info("Item granted", "characterID", characterID, "itemID", item.ID)
	return item, nil
}

func (s *service) generate(ctx context.Context, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error) {
	item, err := GenerateWith(s.tables, slot, rarity, setName, s.rnd)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGenerateFailed, err)
	}
	if err := s.items.InsertItem(ctx, item); err != nil {
		logger.FromContext(ctx).Error("Failed to insert item", "error", err, "itemID", item.ID)
		return nil, fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	return item, nil
}

// Enhance attempts to raise an owned item by one level. A refused attempt
// returns the result together with its Reason as the error.
func (s *service) Enhance(ctx context.Context, characterID, itemID string) (*EnhanceResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Enhance called", "characterID", characterID, "itemID", itemID)

	// Items can be shared between characters, so the item is locked too
	unlock := s.lockManager.LockAll(characterID, itemLockKey(itemID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	char, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if !char.HasItem(itemID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
	}

	// Read inside the transaction; a cached copy may predate another owner's enhancement
	item, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	res := Enhance(item, char.Balance, s.rnd)
	if !res.Attempted() {
		log.Warn("Enhancement refused", "characterID", characterID, "itemID", itemID, "level", item.Level, "reason", res.Reason)
		return &res, res.Reason
	}

	char.Balance = res.Balance
	char.UpdatedAt = time.Now()
	if res.Success {
		if err := tx.UpdateItemLevel(ctx, itemID, res.NewLevel); err != nil {
			return nil, fmt.Errorf(ErrMsgUpdateItemFailed, err)
		}
	}
	if err := tx.SaveCharacter(ctx, char); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveCharacterFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit enhancement", "error", err, "characterID", characterID)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	if res.Success {
		s.invalidate(itemID)
	}

	item.Level = res.NewLevel
	s.publish(ctx, event.NewItemEnhancedEvent(characterID, item, res.OldLevel, res.Success, res.Cost))
	log.Info("Enhancement attempted", "characterID", characterID, "itemID", itemID,
		"success", res.Success, "oldLevel", res.OldLevel, "newLevel", res.NewLevel, "cost", res.Cost)
	return &res, nil
}

// Equip moves an item from the inventory into its slot. Whatever the slot
// held goes back to the inventory.
func (s *service) Equip(ctx context.Context, characterID, itemID string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Equip called", "characterID", characterID, "itemID", itemID)

	unlock := s.lockManager.LockAll(characterID)
	defer unlock()

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if !item.Slot.IsValid() {
		return nil, fmt.Errorf("%w: "+ErrMsgSlotMismatchFmt, domain.ErrInvalidSlot, item.ID, item.Slot)
	}

	var updated *domain.Character
	err = s.withCharacterTx(ctx, characterID, func(c *domain.Character) error {
		if c.Equipment[item.Slot] == itemID {
			updated = c
			return nil
		}
		if !c.RemoveInventory(itemID, 1) {
			return fmt.Errorf("%w: %s", domain.ErrItemNotOwned, itemID)
		}
		if prev := c.Equipment[item.Slot]; prev != "" {
			c.AddInventory(prev, 1)
		}
		c.Equipment[item.Slot] = itemID
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Item equipped", "characterID", characterID, "itemID", itemID, "slot", item.Slot)
	return updated, nil
}

// Unequip moves the item in slot back to the inventory
func (s *service) Unequip(ctx context.Context, characterID string, slot domain.Slot) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Unequip called", "characterID", characterID, "slot", slot)

	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}

	unlock := s.lockManager.LockAll(characterID)
	defer unlock()

	var updated *domain.Character
	err := s.withCharacterTx(ctx, characterID, func(c *domain.Character) error {
		itemID := c.Equipment[slot]
		if itemID == "" {
			return fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
		}
		delete(c.Equipment, slot)
		c.AddInventory(itemID, 1)
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Item unequipped", "characterID", characterID, "slot", slot)
	return updated, nil
}

// withCharacterTx loads the character for update, applies fn and commits.
// The caller must hold the character lock.
func (s *service) withCharacterTx(ctx context.Context, characterID string, fn func(*domain.Character) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	char, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if char.Equipment == nil {
		char.Equipment = make(map[domain.Slot]string)
	}

	if err := fn(char); err != nil {
		return err
	}

	char.UpdatedAt = time.Now()
	if err := tx.SaveCharacter(ctx, char); err != nil {
		return fmt.Errorf(ErrMsgSaveCharacterFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

func itemLockKey(itemID string) string {
	return itemLockPrefix + itemID
}

func (s *service) invalidate(itemID string) {
	if inv, ok := s.items.(invalidator); ok {
		inv.Invalidate(itemID)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
