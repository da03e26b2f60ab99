package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	CombatResolved   Type = domain.EventTypeCombatResolved
	ItemEnhanced     Type = domain.EventTypeItemEnhanced
	ItemGenerated    Type = domain.EventTypeItemGenerated
	DuelCompleted    Type = domain.EventTypeDuelCompleted
	ChallengeExpired Type = domain.EventTypeChallengeExpired
)

// Typed event payloads for type safety

// CombatResolvedPayloadV1 is the typed payload for combat.resolved events
type CombatResolvedPayloadV1 struct {
	CharacterID   string `json:"character_id"`
	Mode          string `json:"mode"`
	StagesCleared int    `json:"stages_cleared"`
	Completed     bool   `json:"completed"`
	Termination   string `json:"termination"`
	GoldReward    int64  `json:"gold_reward"`
	XPReward      int64  `json:"xp_reward"`
	LevelsGained  int    `json:"levels_gained"`
	Timestamp     int64  `json:"timestamp"`
}

// ItemEnhancedPayloadV1 is the typed payload for item.enhanced events
type ItemEnhancedPayloadV1 struct {
	CharacterID string `json:"character_id"`
	ItemID      string `json:"item_id"`
	Rarity      string `json:"rarity"`
	Success     bool   `json:"success"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	Cost        int64  `json:"cost"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemGeneratedPayloadV1 is the typed payload for item.generated events
type ItemGeneratedPayloadV1 struct {
	ItemID    string `json:"item_id"`
	Slot      string `json:"slot"`
	Rarity    string `json:"rarity"`
	SetName   string `json:"set_name,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// DuelCompletedPayloadV1 is the typed payload for duel.completed events
type DuelCompletedPayloadV1 struct {
	ChallengeID string `json:"challenge_id"`
	WinnerID    string `json:"winner_id"`
	LoserID     string `json:"loser_id"`
	Wager       int64  `json:"wager"`
	Turns       int    `json:"turns"`
	Termination string `json:"termination"`
	Timestamp   int64  `json:"timestamp"`
}

// ChallengeExpiredPayloadV1 is the typed payload for duel.challenge_expired events
type ChallengeExpiredPayloadV1 struct {
	ChallengeID  string `json:"challenge_id"`
	ChallengerID string `json:"challenger_id"`
	OpponentID   string `json:"opponent_id"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCombatResolvedEvent creates a combat.resolved event for an applied campaign
func NewCombatResolvedEvent(characterID string, res *domain.CampaignResult, termination domain.TerminationReason, levelsGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CombatResolved,
		Payload: CombatResolvedPayloadV1{
			CharacterID:   characterID,
			Mode:          string(res.Mode),
			StagesCleared: res.StagesCleared,
			Completed:     res.Completed,
			Termination:   string(termination),
			GoldReward:    res.GoldReward,
			XPReward:      res.XPReward,
			LevelsGained:  levelsGained,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewItemEnhancedEvent creates an item.enhanced event
func NewItemEnhancedEvent(characterID string, item *domain.Item, oldLevel int, success bool, cost int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEnhanced,
		Payload: ItemEnhancedPayloadV1{
			CharacterID: characterID,
			ItemID:      item.ID,
			Rarity:      string(item.Rarity),
			Success:     success,
			OldLevel:    oldLevel,
			NewLevel:    item.Level,
			Cost:        cost,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewItemGeneratedEvent creates an item.generated event
func NewItemGeneratedEvent(item *domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemGenerated,
		Payload: ItemGeneratedPayloadV1{
			ItemID:    item.ID,
			Slot:      string(item.Slot),
			Rarity:    string(item.Rarity),
			SetName:   item.SetName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDuelCompletedEvent creates a duel.completed event
func NewDuelCompletedEvent(res *domain.DuelResult) Event {
	p := DuelCompletedPayloadV1{
		ChallengeID: res.ChallengeID.String(),
		WinnerID:    res.WinnerID,
		LoserID:     res.LoserID,
		Wager:       res.Wager,
		Timestamp:   time.Now().Unix(),
	}
	if res.Combat != nil {
		p.Turns = res.Combat.Turns
		p.Termination = string(res.Combat.Termination)
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    DuelCompleted,
		Payload: p,
	}
}

// NewChallengeExpiredEvent creates a duel.challenge_expired event
func NewChallengeExpiredEvent(c *domain.Challenge) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChallengeExpired,
		Payload: ChallengeExpiredPayloadV1{
			ChallengeID:  c.ID.String(),
			ChallengerID: c.ChallengerID,
			OpponentID:   c.OpponentID,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf(ErrFmtHandlersFailed, len(errs), event.Type, err)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
