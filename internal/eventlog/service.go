// Package eventlog persists domain events so a character's combat and gear
// history can be read back after the fact.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger on the bus for the given types
	Subscribe(bus event.Bus, types []event.Type)

	// History returns a character's newest logged events
	History(ctx context.Context, characterID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus, types []event.Type) {
	for _, eventType := range types {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent stores one event. Storage failures are logged and swallowed so
// a publish retry does not re-run every other subscriber.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn(LogMsgEventMarshalFailed, "type", evt.Type, "error", err)
		return nil
	}

	ids := CharacterIDs(evt)
	if err := s.repo.LogEvent(ctx, string(evt.Type), ids, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "character_ids", ids)
	return nil
}

func (s *service) History(ctx context.Context, characterID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	entries, err := s.repo.GetEventsByCharacter(ctx, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHistoryFailed, err)
	}
	return entries, nil
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// CharacterIDs lists the characters an event concerns
func CharacterIDs(evt event.Event) []string {
	switch p := evt.Payload.(type) {
	case event.CombatResolvedPayloadV1:
		return []string{p.CharacterID}
	case event.ItemEnhancedPayloadV1:
		return []string{p.CharacterID}
	case event.DuelCompletedPayloadV1:
		return []string{p.WinnerID, p.LoserID}
	case event.ChallengeExpiredPayloadV1:
		return []string{p.ChallengerID, p.OpponentID}
	}
	return []string{}
}
