package repository

import (
	"context"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Character defines the interface for character persistence.
// GetCharacter returns domain.ErrCharacterNotFound for unknown ids and
// CreateCharacter returns domain.ErrCharacterExists on id collision.
type Character interface {
	GetCharacter(ctx context.Context, id string) (*domain.Character, error)
	CreateCharacter(ctx context.Context, c *domain.Character) error
	SaveCharacter(ctx context.Context, c *domain.Character) error
}

// Game is the full store used by services that mutate characters and items together
type Game interface {
	Character
	Item
	BeginTx(ctx context.Context) (GameTx, error)
}
