package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemCrafted is published when the forge produces a new item
	EventTypeItemCrafted = "item.crafted"

	// EventTypeItemSold is published when an item leaves the sell rack, manually or by timeout
	EventTypeItemSold = "item.sold"

	// EventTypeUpgradePurchased is published when a category gains a level
	EventTypeUpgradePurchased = "upgrade.purchased"

	// EventTypeOptionRetired is published when an upgrade removes an option from the draw pool
	EventTypeOptionRetired = "option.retired"
)
