package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Thresholds below which tuning is legal but probably a mistake
const (
	minSensibleSellCountdown     = 5 * time.Second
	minSensibleImprovementFactor = 0.5
)

type envCheck struct {
	applies func() bool
	message string
}

var envWarnings = []envCheck{
	{
		applies: func() bool { return os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return os.Getenv("STARTING_MONEY") != "" && isProd() },
		message: "STARTING_MONEY is set in prod - players will start with free funds",
	},
	{
		applies: func() bool { return os.Getenv("LOG_DIR") == "" && isProd() },
		message: "LOG_DIR is not set in prod - logs go to stdout only",
	},
	{
		applies: func() bool {
			d, err := time.ParseDuration(os.Getenv("SELL_COUNTDOWN"))
			return err == nil && d < minSensibleSellCountdown
		},
		message: "SELL_COUNTDOWN is very short - most items will auto-sell before anyone can inspect them",
	},
	{
		applies: func() bool {
			k, err := strconv.ParseFloat(os.Getenv("IMPROVEMENT_FACTOR"), 64)
			return err == nil && k > 0 && k < minSensibleImprovementFactor
		},
		message: "IMPROVEMENT_FACTOR is aggressive - common options will retire within a few upgrade levels",
	},
}

func isProd() bool { return os.Getenv("ENVIRONMENT") == "prod" }

// ValidateEnvWithWarnings runs ValidateEnv, then reports settings that are
// valid but likely unintended.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, c := range envWarnings {
		if c.applies() {
			warnings = append(warnings, c.message)
		}
	}
	return warnings, nil
}
