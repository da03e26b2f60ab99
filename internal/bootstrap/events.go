package bootstrap

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BrandishRPG_Go/internal/config"
	"github.com/osse101/BrandishRPG_Go/internal/event"
)

// InitializeEventSystem builds the in-memory bus and the retrying publisher
// in front of it. Zero-valued retry settings take the Event* defaults.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	maxRetries := cmp.Or(cfg.EventMaxRetries, EventDefaultMaxRetries)
	retryDelay := cmp.Or(cfg.EventRetryDelay, EventDefaultRetryDelay)
	deadLetterPath := cmp.Or(cfg.EventDeadLetterPath, EventDefaultDeadLetterPath)

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", LogMsgFailedCreateDeadLetterDir, filepath.Dir(deadLetterPath), err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)
	return bus, publisher, nil
}
