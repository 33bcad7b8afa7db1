package config

import "time"

const (
	// Configuration file paths
	ConfigPathForge       = "configs/forge.json"
	ConfigPathForgeSchema = "configs/schemas/forge.schema.json"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "sword-forge"
	DefaultVersion     = "dev"

	DefaultImprovementFactor       = 0.91
	DefaultBaseItemValue           = 10.0
	DefaultLevelMultiplierPerLevel = 0.01
	DefaultMaxEnchantments         = 3
	DefaultSellRackSize            = 256
	DefaultOddsCacheSize           = 1024
	DefaultSellCountdown           = 30 * time.Second

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
