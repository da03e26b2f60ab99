// Package character manages player profiles
package character

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/BrandishRPG_Go/internal/buffs"
	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
)

// Calculator aggregates a character's buffs and resolves its equipment
type Calculator interface {
	Calculate(ctx context.Context, c *domain.Character) (domain.ActiveBuffs, error)
	EquippedItems(ctx context.Context, c *domain.Character) ([]*domain.Item, error)
}

// Profile is a character together with its derived combat snapshot
type Profile struct {
	Character *domain.Character  `json:"character"`
	Buffs     domain.ActiveBuffs `json:"buffs"`
	Equipped  []*domain.Item     `json:"equipped"`
	NextLevel int64              `json:"next_level_xp"`
}

// Service defines the interface for character operations
type Service interface {
	Create(ctx context.Context, name string) (*domain.Character, error)
	Get(ctx context.Context, characterID string) (*domain.Character, error)
	Profile(ctx context.Context, characterID string) (*Profile, error)
	MigrateLegacyBuffs(ctx context.Context, characterID string) (*domain.Character, error)
}

type service struct {
	repo            repository.Character
	calc            Calculator
	lockManager     *concurrency.LockManager
	startingBalance int64
}

// NewService creates a new character service
func NewService(repo repository.Character, calc Calculator, lockManager *concurrency.LockManager, startingBalance int64) Service {
	return &service{
		repo:            repo,
		calc:            calc,
		lockManager:     lockManager,
		startingBalance: startingBalance,
	}
}

// Create registers a new level 1 character
func (s *service) Create(ctx context.Context, name string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("Create called", "name", name)

	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return nil, fmt.Errorf("%w: "+ErrMsgNameLengthFmt, domain.ErrInvalidInput, MinNameLength, MaxNameLength)
	}

	c := domain.NewCharacter(uuid.NewString(), name, s.startingBalance)
	if err := s.repo.CreateCharacter(ctx, c); err != nil {
		log.Error("Failed to create character", "error", err, "name", name)
		return nil, fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}

	log.Info("Character created", "characterID", c.ID, "name", c.Name)
	return c, nil
}

// Get returns the stored character
func (s *service) Get(ctx context.Context, characterID string) (*domain.Character, error) {
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	return c, nil
}

// Profile returns the character with freshly aggregated buffs
func (s *service) Profile(ctx context.Context, characterID string) (*Profile, error) {
	c, err := s.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	b, err := s.calc.Calculate(ctx, c)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCalculateFailed, err)
	}
	equipped, err := s.calc.EquippedItems(ctx, c)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCalculateFailed, err)
	}

	return &Profile{
		Character: c,
		Buffs:     b,
		Equipped:  equipped,
		NextLevel: domain.XPForNextLevel(c.Level),
	}, nil
}

// MigrateLegacyBuffs rewrites the legacy buff record in fraction form so it
// no longer depends on read-time normalization
func (s *service) MigrateLegacyBuffs(ctx context.Context, characterID string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info("MigrateLegacyBuffs called", "characterID", characterID)

	unlock := s.lockManager.LockAll(characterID)
	defer unlock()

	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}

	canonical := buffs.CanonicalLegacy(c.Buffs)
	if canonical == c.Buffs {
		return c, nil
	}

	c.Buffs = canonical
	c.UpdatedAt = time.Now()
	if err := s.repo.SaveCharacter(ctx, c); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveCharacterFailed, err)
	}

	log.Info("Legacy buffs migrated", "characterID", characterID)
	return c, nil
}
