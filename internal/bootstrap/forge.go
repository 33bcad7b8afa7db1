package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SwordForge_Go/internal/catalog"
	"github.com/osse101/SwordForge_Go/internal/concurrency"
	"github.com/osse101/SwordForge_Go/internal/config"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/forge"
	"github.com/osse101/SwordForge_Go/internal/odds"
	"github.com/osse101/SwordForge_Go/internal/upgrade"
)

// LoadCatalog reads, schema-checks and builds the forge data file.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	slog.Info(LogMsgLoadingCatalog, "path", cfg.ForgeConfigPath)

	cat, err := catalog.NewLoader(cfg.ForgeSchemaPath).LoadCatalog(cfg.ForgeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"categories", len(cat.Tables),
		"enchantment_levels", len(cat.Enchantments.Levels()),
		"checksum", cat.Checksum)
	return cat, nil
}

// Forge bundles the forge service with the pieces its readiness probe needs.
type Forge struct {
	Service       forge.Service
	Ledger        *upgrade.Ledger
	Redistributor *odds.Redistributor
}

// InitializeForge wires the redistributor, upgrade ledger and forge service
// from a loaded catalog. Events go out through bus.
func InitializeForge(cfg *config.Config, cat *catalog.Catalog, bus event.Bus) (*Forge, error) {
	redistributor, err := odds.NewRedistributor(cfg.ImprovementFactor, cfg.OddsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateRedistrib, err)
	}

	ledger, err := upgrade.NewLedger(redistributor, cat.Tables, cat.Upgrades)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLedger, err)
	}

	svc, err := forge.NewService(forge.Dependencies{
		Ledger:        ledger,
		Redistributor: redistributor,
		Enchantments:  cat.Enchantments,
		Bus:           bus,
		LockManager:   concurrency.NewLockManager(),
	}, forge.Config{
		BaseItemValue:           cfg.BaseItemValue,
		LevelMultiplierPerLevel: cfg.LevelMultiplierPerLevel,
		MaxEnchantments:         cfg.MaxEnchantments,
		StartingMoney:           cfg.StartingMoney,
		SellCountdown:           cfg.SellCountdown,
		SellRackSize:            cfg.SellRackSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateForgeService, err)
	}

	slog.Info(LogMsgForgeReady,
		"improvement_factor", redistributor.Factor(),
		"categories", ledger.Categories(),
		"sell_countdown", cfg.SellCountdown)

	return &Forge{Service: svc, Ledger: ledger, Redistributor: redistributor}, nil
}

// CheckHealth reports ready once every category has a drawable option.
func (f *Forge) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, name := range f.Ledger.Categories() {
		snap, err := f.Ledger.Snapshot(name)
		if err != nil {
			return err
		}
		if snap.Drawable() == 0 {
			return fmt.Errorf("category %q has no drawable options", name)
		}
	}
	return nil
}
