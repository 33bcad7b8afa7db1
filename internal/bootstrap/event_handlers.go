package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/logger"
	"github.com/osse101/SwordForge_Go/internal/metrics"
)

// AuditedEventTypes are written to the debug log as they are delivered
var AuditedEventTypes = []event.Type{
	event.ItemCrafted,
	event.ItemSold,
	event.UpgradePurchased,
	event.OptionRetired,
}

// RegisterEventHandlers subscribes the metrics collector and the event audit
// log to the bus.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range AuditedEventTypes {
		bus.Subscribe(t, auditEvent)
	}
	slog.Info(LogMsgEventAuditRegistered, "types", len(AuditedEventTypes))
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug("Forge event",
		"type", evt.Type,
		"version", evt.Version,
		"timestamp", evt.Timestamp,
		"metadata", evt.Metadata)
	return nil
}
