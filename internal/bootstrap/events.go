package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SwordForge_Go/internal/config"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/sse"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a resilient
// publisher. Handlers subscribe on either; services publish through the
// publisher so failed deliveries are retried and finally dead-lettered.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
		}
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     cfg.EventMaxRetries,
		RetryDelay:     cfg.EventRetryDelay,
		DeadLetterPath: deadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, publisher, nil
}

// InitializeEventStream starts the SSE hub and forwards bus events to it
func InitializeEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub).Subscribe(bus)
	slog.Info(LogMsgEventStreamStarted)
	return hub
}
