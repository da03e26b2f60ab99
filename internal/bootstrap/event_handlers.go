package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
)

// ObservedEventTypes are the domain events written to the log
var ObservedEventTypes = []event.Type{
	event.CombatResolved,
	event.ItemEnhanced,
	event.ItemGenerated,
	event.DuelCompleted,
	event.ChallengeExpired,
}

// RegisterEventHandlers subscribes the metrics collector, the debug logger and
// the persistent event log
func RegisterEventHandlers(bus event.Bus, events eventlog.Service) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range ObservedEventTypes {
		bus.Subscribe(t, logEvent)
	}
	events.Subscribe(bus, ObservedEventTypes)
	slog.Info(LogMsgEventLoggerInitialized, "types", len(ObservedEventTypes))

	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgEventObserved,
		"type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
