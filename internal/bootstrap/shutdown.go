package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/forge"
	"github.com/osse101/SwordForge_Go/internal/server"
	"github.com/osse101/SwordForge_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	EventHub           *sse.Hub
	ForgeService       forge.Service
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in dependency order:
// 1. Event streams (open SSE connections would hold the server open)
// 2. HTTP server (no new crafts or sales)
// 3. Forge (auto-sells whatever is still on the rack, publishing events)
// 4. Event publisher (waits for pending retries)
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.EventHub != nil {
		slog.Info(LogMsgClosingEventStreams)
		components.EventHub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ForgeService != nil {
		shutdownService(ctx, ServiceNameForge, components.ForgeService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
