// Package fakestore provides a stateful in-memory implementation of the
// repository interfaces for service-level tests.
package fakestore

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
)

// Store keeps deep copies of characters and items so callers cannot mutate
// stored state without going through Save.
type Store struct {
	mu         sync.Mutex
	characters map[string]*domain.Character
	items      map[string]*domain.Item

	// ItemErr, when set, is returned by GetItem for that id
	ItemErr map[string]error

	Commits   int
	Rollbacks int
}

var _ repository.Game = (*Store)(nil)

// New creates an empty store
func New() *Store {
	return &Store{
		characters: make(map[string]*domain.Character),
		items:      make(map[string]*domain.Item),
		ItemErr:    make(map[string]error),
	}
}

// PutCharacter seeds a character
func (s *Store) PutCharacter(c *domain.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.characters[c.ID] = cloneCharacter(c)
}

// PutItem seeds an item
func (s *Store) PutItem(item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = cloneItem(item)
}

// Character returns a copy of the stored character or nil
func (s *Store) Character(id string) *domain.Character {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.characters[id]
	if !ok {
		return nil
	}
	return cloneCharacter(c)
}

// Item returns a copy of the stored item or nil
func (s *Store) Item(id string) *domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil
	}
	return cloneItem(it)
}

func (s *Store) GetCharacter(_ context.Context, id string) (*domain.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.characters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, id)
	}
	return cloneCharacter(c), nil
}

func (s *Store) CreateCharacter(_ context.Context, c *domain.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characters[c.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrCharacterExists, c.ID)
	}
	s.characters[c.ID] = cloneCharacter(c)
	return nil
}

func (s *Store) SaveCharacter(_ context.Context, c *domain.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characters[c.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, c.ID)
	}
	s.characters[c.ID] = cloneCharacter(c)
	return nil
}

func (s *Store) GetItem(_ context.Context, id string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.ItemErr[id]; ok {
		return nil, err
	}
	it, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return cloneItem(it), nil
}

func (s *Store) InsertItem(_ context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = cloneItem(item)
	return nil
}

func (s *Store) UpdateItemLevel(_ context.Context, itemID string, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[itemID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	it.Level = level
	return nil
}

// BeginTx returns a transaction that buffers writes until Commit
func (s *Store) BeginTx(_ context.Context) (repository.GameTx, error) {
	return &tx{
		store:      s,
		characters: make(map[string]*domain.Character),
		levels:     make(map[string]int),
	}, nil
}

type tx struct {
	store      *Store
	characters map[string]*domain.Character
	levels     map[string]int
	order      []string
	done       bool
}

func (t *tx) GetCharacterForUpdate(ctx context.Context, id string) (*domain.Character, error) {
	if c, ok := t.characters[id]; ok {
		return cloneCharacter(c), nil
	}
	return t.store.GetCharacter(ctx, id)
}

// GetItemForUpdate sees the transaction's own pending level change
func (t *tx) GetItemForUpdate(ctx context.Context, id string) (*domain.Item, error) {
	it, err := t.store.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if level, ok := t.levels[id]; ok {
		it.Level = level
	}
	return it, nil
}

func (t *tx) SaveCharacter(_ context.Context, c *domain.Character) error {
	t.characters[c.ID] = cloneCharacter(c)
	return nil
}

func (t *tx) UpdateItemLevel(_ context.Context, itemID string, level int) error {
	if _, ok := t.levels[itemID]; !ok {
		t.order = append(t.order, itemID)
	}
	t.levels[itemID] = level
	return nil
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("tx closed")
	}
	t.done = true
	for _, c := range t.characters {
		if err := t.store.SaveCharacter(ctx, c); err != nil {
			return err
		}
	}
	for _, id := range t.order {
		if err := t.store.UpdateItemLevel(ctx, id, t.levels[id]); err != nil {
			return err
		}
	}
	t.store.mu.Lock()
	t.store.Commits++
	t.store.mu.Unlock()
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.Rollbacks++
	t.store.mu.Unlock()
	return nil
}

func cloneCharacter(c *domain.Character) *domain.Character {
	return c.Clone()
}

func cloneItem(it *domain.Item) *domain.Item {
	return it.Clone()
}
