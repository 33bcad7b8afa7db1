package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/SwordForge_Go/internal/event"
)

// StreamedEventTypes are forwarded from the bus to stream clients
var StreamedEventTypes = []event.Type{
	event.ItemCrafted,
	event.ItemSold,
	event.UpgradePurchased,
	event.OptionRetired,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers the forwarder for every streamed event type
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, t := range StreamedEventTypes {
		bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscriberReady, "types", StreamedEventTypes)
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.GetMetadataValue(event.MetadataSource), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
