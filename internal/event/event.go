package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string            `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type              `json:"type"`
	Payload   interface{}       `json:"payload"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}

// Forge event types
const (
	ItemCrafted      Type = domain.EventTypeItemCrafted
	ItemSold         Type = domain.EventTypeItemSold
	UpgradePurchased Type = domain.EventTypeUpgradePurchased
	OptionRetired    Type = domain.EventTypeOptionRetired
)

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// NewItemCraftedEvent creates an item crafted event
func NewItemCraftedEvent(item *domain.RolledItem) Event {
	return newEvent(ItemCrafted, domain.ItemCraftedPayload{
		ItemID:       item.ID,
		Attributes:   item.Attributes,
		Enchantments: len(item.Enchantments),
		Value:        item.Value,
	})
}

// NewItemSoldEvent creates an item sold event. auto marks a sale triggered
// by the sell countdown rather than the player.
func NewItemSoldEvent(itemID string, value float64, auto bool) Event {
	e := newEvent(ItemSold, domain.ItemSoldPayload{
		ItemID: itemID,
		Value:  value,
		Auto:   auto,
	})
	if auto {
		e.Metadata = map[string]string{MetadataSource: SourceCountdown}
	} else {
		e.Metadata = map[string]string{MetadataSource: SourcePlayer}
	}
	return e
}

// NewUpgradePurchasedEvent creates an upgrade purchased event
func NewUpgradePurchasedEvent(category string, level int, cost float64) Event {
	return newEvent(UpgradePurchased, domain.UpgradePurchasedPayload{
		Category: category,
		Level:    level,
		Cost:     cost,
	})
}

// NewOptionRetiredEvent creates an option retired event
func NewOptionRetiredEvent(category, option string, level int) Event {
	return newEvent(OptionRetired, domain.OptionRetiredPayload{
		Category: category,
		Option:   option,
		Level:    level,
	})
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

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
