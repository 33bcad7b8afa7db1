package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/config"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/mocks"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:                "debug",
		LogFormat:               "text",
		Environment:             "test",
		ForgeConfigPath:         filepath.Join("..", "..", config.ConfigPathForge),
		ForgeSchemaPath:         filepath.Join("..", "..", config.ConfigPathForgeSchema),
		ImprovementFactor:       config.DefaultImprovementFactor,
		BaseItemValue:           config.DefaultBaseItemValue,
		LevelMultiplierPerLevel: config.DefaultLevelMultiplierPerLevel,
		MaxEnchantments:         config.DefaultMaxEnchantments,
		SellCountdown:           time.Minute,
		SellRackSize:            8,
		OddsCacheSize:           32,
		EventRetryDelay:         time.Millisecond,
		EventDeadLetterPath:     filepath.Join(t.TempDir(), "events", "deadletter.jsonl"),
	}
}

func TestInitializeForge_ShippedCatalog(t *testing.T) {
	cfg := testConfig(t)

	cat, err := LoadCatalog(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Checksum)

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	RegisterEventHandlers(bus)
	hub := InitializeEventStream(bus)

	f, err := InitializeForge(cfg, cat, publisher)
	require.NoError(t, err)
	require.NoError(t, f.CheckHealth(context.Background()))

	client, ok := hub.Register([]string{string(event.ItemCrafted)})
	require.True(t, ok)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx := context.Background()
	crafted, err := f.Service.Craft(ctx)
	require.NoError(t, err)
	assert.Len(t, crafted.Item.Attributes, len(cat.Tables))

	select {
	case streamed := <-client.EventChannel:
		assert.Equal(t, string(event.ItemCrafted), streamed.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("craft was not streamed")
	}

	rack, err := f.Service.Rack(ctx)
	require.NoError(t, err)
	assert.Len(t, rack, 1)

	GracefulShutdown(ctx, ShutdownComponents{EventHub: hub, ForgeService: f.Service, ResilientPublisher: publisher})

	st, err := f.Service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, crafted.Item.Value, st.Balance, "shutdown auto-sells the rack")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.ForgeConfigPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadCatalog(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
}

func TestCheckHealth_CancelledContext(t *testing.T) {
	cfg := testConfig(t)
	cat, err := LoadCatalog(cfg)
	require.NoError(t, err)
	f, err := InitializeForge(cfg, cat, event.NewMemoryBus())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, f.CheckHealth(ctx), context.Canceled)
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := testConfig(t)

	_, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, publisher)

	info, err := os.Stat(filepath.Dir(cfg.EventDeadLetterPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGracefulShutdown_LogsServiceErrors(t *testing.T) {
	svc := mocks.NewMockForgeService(t)
	svc.On("Shutdown", mock.Anything).Return(errors.New("boom")).Once()

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{ForgeService: svc})
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "notes.txt"}, left)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogDir = t.TempDir()

	closer, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	entries, err := os.ReadDir(cfg.LogDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, LogFileExtension, filepath.Ext(entries[0].Name()))
}
