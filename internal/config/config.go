package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // API key for authentication
	LogDir      string // empty logs to stdout only

	// Proxies whose X-Forwarded-For header is trusted for client IPs
	TrustedProxies []string

	// Forge data and tuning
	ForgeConfigPath         string
	ForgeSchemaPath         string
	ImprovementFactor       float64
	BaseItemValue           float64
	LevelMultiplierPerLevel float64
	MaxEnchantments         int
	StartingMoney           float64

	// Sell rack
	SellCountdown time.Duration
	SellRackSize  int

	OddsCacheSize int

	// Event publishing
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),
		LogDir:      getEnv("LOG_DIR", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		ForgeConfigPath:         getEnv("FORGE_CONFIG_PATH", ConfigPathForge),
		ForgeSchemaPath:         getEnv("FORGE_SCHEMA_PATH", ConfigPathForgeSchema),
		ImprovementFactor:       getEnvAsFloat("IMPROVEMENT_FACTOR", DefaultImprovementFactor),
		BaseItemValue:           getEnvAsFloat("BASE_ITEM_VALUE", DefaultBaseItemValue),
		LevelMultiplierPerLevel: getEnvAsFloat("LEVEL_MULTIPLIER_PER_LEVEL", DefaultLevelMultiplierPerLevel),
		MaxEnchantments:         getEnvAsInt("MAX_ENCHANTMENTS", DefaultMaxEnchantments),
		StartingMoney:           getEnvAsFloat("STARTING_MONEY", 0),

		SellCountdown: getEnvAsDuration("SELL_COUNTDOWN", DefaultSellCountdown),
		SellRackSize:  getEnvAsInt("SELL_RACK_SIZE", DefaultSellRackSize),
		OddsCacheSize: getEnvAsInt("ODDS_CACHE_SIZE", DefaultOddsCacheSize),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.validateTuning(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateTuning() error {
	if c.ImprovementFactor <= 0 || c.ImprovementFactor >= 1 {
		return fmt.Errorf("IMPROVEMENT_FACTOR must be between 0 and 1 (exclusive), got %v", c.ImprovementFactor)
	}
	if c.BaseItemValue < 0 {
		return fmt.Errorf("BASE_ITEM_VALUE must not be negative, got %v", c.BaseItemValue)
	}
	if c.LevelMultiplierPerLevel < 0 {
		return fmt.Errorf("LEVEL_MULTIPLIER_PER_LEVEL must not be negative, got %v", c.LevelMultiplierPerLevel)
	}
	if c.MaxEnchantments < 0 {
		return fmt.Errorf("MAX_ENCHANTMENTS must not be negative, got %d", c.MaxEnchantments)
	}
	if c.SellCountdown <= 0 {
		return fmt.Errorf("SELL_COUNTDOWN must be positive, got %s", c.SellCountdown)
	}
	if c.SellRackSize <= 0 {
		return fmt.Errorf("SELL_RACK_SIZE must be positive, got %d", c.SellRackSize)
	}
	if c.EventMaxRetries < 0 {
		return fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when it is unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat retrieves a float environment variable, falling back to the
// default when it is unset or malformed
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses values such as "30s" or "2m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
