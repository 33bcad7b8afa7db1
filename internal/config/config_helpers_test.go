package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_FLOAT_VAR")
		assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})

	t.Run("parses valid float", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "1.25")
		assert.Equal(t, 1.25, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})

	t.Run("returns default for invalid float", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "abc")
		assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Second))
	})

	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1m30s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Second))
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, 5*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Second))
	})
}
