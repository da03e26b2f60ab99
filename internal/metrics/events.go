package metrics

import (
	"context"

	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CombatResolved,
		event.ItemEnhanced,
		event.ItemGenerated,
		event.DuelCompleted,
		event.ChallengeExpired,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Payloads that fail to
// decode are counted as published and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CombatResolved:
		var p event.CombatResolvedPayloadV1
		if p, err = event.DecodePayload[event.CombatResolvedPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeFailed
			if p.Completed {
				outcome = OutcomeCompleted
			}
			CampaignsResolved.WithLabelValues(p.Mode, outcome).Inc()
			StagesCleared.WithLabelValues(p.Mode).Observe(float64(p.StagesCleared))
		}

	case event.ItemEnhanced:
		var p event.ItemEnhancedPayloadV1
		if p, err = event.DecodePayload[event.ItemEnhancedPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeFailed
			if p.Success {
				outcome = OutcomeSuccess
			}
			EnhanceAttempts.WithLabelValues(p.Rarity, outcome).Inc()
			EnhanceGoldSpent.Add(float64(p.Cost))
		}

	case event.ItemGenerated:
		var p event.ItemGeneratedPayloadV1
		if p, err = event.DecodePayload[event.ItemGeneratedPayloadV1](evt.Payload); err == nil {
			ItemsGenerated.WithLabelValues(p.Rarity).Inc()
		}

	case event.DuelCompleted:
		var p event.DuelCompletedPayloadV1
		if p, err = event.DecodePayload[event.DuelCompletedPayloadV1](evt.Payload); err == nil {
			DuelsCompleted.WithLabelValues(p.Termination).Inc()
			DuelGoldWagered.Add(float64(p.Wager))
		}

	case event.ChallengeExpired:
		ChallengesExpired.Inc()
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
