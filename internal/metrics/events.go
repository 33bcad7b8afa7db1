package metrics

import (
	"context"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to forge events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all forge events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.ItemCrafted,
		event.ItemSold,
		event.UpgradePurchased,
		event.OptionRetired,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Undecodable payloads are
// logged and skipped.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ItemCrafted:
		var p domain.ItemCraftedPayload
		if p, err = event.DecodePayload[domain.ItemCraftedPayload](evt.Payload); err == nil {
			ItemsCrafted.Inc()
			ItemValue.Observe(p.Value)
			EnchantmentCount.Observe(float64(p.Enchantments))
			for category, option := range p.Attributes {
				AttributeRolls.WithLabelValues(category, option).Inc()
			}
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			source := event.SourcePlayer
			if p.Auto {
				source = event.SourceCountdown
			}
			ItemsSold.WithLabelValues(source).Inc()
			MoneyEarned.Add(p.Value)
		}

	case event.UpgradePurchased:
		var p domain.UpgradePurchasedPayload
		if p, err = event.DecodePayload[domain.UpgradePurchasedPayload](evt.Payload); err == nil {
			UpgradesPurchased.WithLabelValues(p.Category).Inc()
			UpgradeLevel.WithLabelValues(p.Category).Set(float64(p.Level))
			MoneySpent.Add(p.Cost)
		}

	case event.OptionRetired:
		var p domain.OptionRetiredPayload
		if p, err = event.DecodePayload[domain.OptionRetiredPayload](evt.Payload); err == nil {
			OptionsRetired.WithLabelValues(p.Category).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
