package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one persisted domain event
type Entry struct {
	ID           int64           `json:"id"`
	EventType    string          `json:"event_type"`
	CharacterIDs []string        `json:"character_ids"`
	Payload      json.RawMessage `json:"payload"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Repository defines the interface for event history storage
type Repository interface {
	// LogEvent stores an event with the characters it concerns
	LogEvent(ctx context.Context, eventType string, characterIDs []string, payload []byte) error

	// GetEventsByCharacter returns the newest events for a character, newest first
	GetEventsByCharacter(ctx context.Context, characterID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
