package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	errHandler := errors.New("handler error")
	var ran bool
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errHandler
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		ran = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	assert.ErrorIs(t, err, errHandler)
	assert.True(t, ran, "later handlers still run after a failure")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody"}))
}

func TestNewDuelCompletedEvent(t *testing.T) {
	id := uuid.New()
	evt := NewDuelCompletedEvent(&domain.DuelResult{
		ChallengeID: id,
		WinnerID:    "a",
		LoserID:     "b",
		Wager:       50,
		Combat:      &domain.CombatResult{Turns: 7, Termination: domain.TerminationKnockout},
	})

	assert.Equal(t, DuelCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)

	payload, err := DecodePayload[DuelCompletedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, id.String(), payload.ChallengeID)
	assert.Equal(t, 7, payload.Turns)
	assert.Equal(t, "knockout", payload.Termination)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"item_id": "abc", "success": true, "new_level": 4}

	payload, err := DecodePayload[ItemEnhancedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", payload.ItemID)
	assert.True(t, payload.Success)
	assert.Equal(t, 4, payload.NewLevel)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
	assert.Equal(t, base, CalculateRetryDelay(base, 0), "attempts below one use the base delay")
}
