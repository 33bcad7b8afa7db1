// Package forge is the crafting service: it rolls items, prices them,
// keeps them on a sell rack and spends the player's money on upgrades.
package forge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SwordForge_Go/internal/concurrency"
	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/enchantment"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/internal/logger"
	"github.com/osse101/SwordForge_Go/internal/odds"
	"github.com/osse101/SwordForge_Go/internal/player"
	"github.com/osse101/SwordForge_Go/internal/roller"
	"github.com/osse101/SwordForge_Go/internal/sampler"
	"github.com/osse101/SwordForge_Go/internal/upgrade"
	"github.com/osse101/SwordForge_Go/internal/valuation"
)

// Service defines the interface for forge operations
type Service interface {
	Craft(ctx context.Context) (*CraftResult, error)
	PurchaseUpgrade(ctx context.Context, category string) (*PurchaseOutcome, error)
	Sell(ctx context.Context, itemID string) (*SaleResult, error)
	Rack(ctx context.Context) ([]*domain.RolledItem, error)
	Status(ctx context.Context) (*Status, error)
	Categories(ctx context.Context) ([]CategoryView, error)
	OddsReport(ctx context.Context, category string, compare bool) (string, error)
	Shutdown(ctx context.Context) error
}

// Dependencies are the collaborators a forge service is assembled from
type Dependencies struct {
	Ledger        *upgrade.Ledger
	Redistributor *odds.Redistributor
	Enchantments  *enchantment.Table
	Bus           event.Bus
	LockManager   *concurrency.LockManager
	Source        sampler.Source // nil uses sampler.Default
}

type service struct {
	cfg           Config
	ledger        *upgrade.Ledger
	redistributor *odds.Redistributor
	tables        map[string]*domain.OptionTable
	attributes    *roller.Roller
	enchanter     *enchantment.Roller
	calculator    *valuation.Calculator
	wallet        *player.Wallet
	progress      *player.Progress
	rack          *sellRack
	bus           event.Bus
	lockManager   *concurrency.LockManager
}

// NewService creates a new forge service
func NewService(deps Dependencies, cfg Config) (Service, error) {
	if deps.Ledger == nil || deps.Redistributor == nil || deps.Enchantments == nil {
		return nil, fmt.Errorf("%w: ledger, redistributor and enchantment table are required", domain.ErrInvalidInput)
	}
	if cfg.SellCountdown <= 0 {
		cfg.SellCountdown = DefaultSellCountdown
	}
	if cfg.SellRackSize <= 0 {
		cfg.SellRackSize = DefaultSellRackSize
	}
	if cfg.BaseItemValue <= 0 {
		cfg.BaseItemValue = domain.DefaultBaseItemValue
	}
	if cfg.LevelMultiplierPerLevel < 0 {
		cfg.LevelMultiplierPerLevel = domain.DefaultLevelMultiplierPerLevel
	}
	if cfg.MaxEnchantments <= 0 {
		cfg.MaxEnchantments = domain.MaxEnchantments
	}
	if deps.LockManager == nil {
		deps.LockManager = concurrency.NewLockManager()
	}

	tables := make(map[string]*domain.OptionTable)
	for _, name := range deps.Ledger.Categories() {
		t, err := deps.Ledger.Table(name)
		if err != nil {
			return nil, err
		}
		tables[name] = t
	}

	s := &service{
		cfg:           cfg,
		ledger:        deps.Ledger,
		redistributor: deps.Redistributor,
		tables:        tables,
		attributes:    roller.NewRoller(deps.Ledger, deps.Source),
		enchanter:     enchantment.NewRoller(deps.Enchantments, deps.Source),
		calculator:    valuation.NewCalculator(cfg.BaseItemValue, cfg.LevelMultiplierPerLevel),
		wallet:        player.NewWallet(cfg.StartingMoney),
		progress:      player.NewProgress(),
		bus:           deps.Bus,
		lockManager:   deps.LockManager,
	}
	s.rack = newSellRack(cfg.SellRackSize, cfg.SellCountdown, s.autoSell)
	return s, nil
}

// Craft rolls a new item, prices it and places it on the sell rack
func (s *service) Craft(ctx context.Context) (*CraftResult, error) {
	log := logger.FromContext(ctx)

	attrs, err := s.attributes.RollAll()
	if err != nil {
		return nil, fmt.Errorf("failed to roll attributes: %w", err)
	}

	level := s.progress.Level()
	enchants := s.enchanter.Roll(s.cfg.MaxEnchantments)
	value := s.calculator.ItemValue(attrs, s.tables, s.enchanter.Table().ValueMultipliers(enchants), level)

	item := &domain.RolledItem{
		ID:           uuid.NewString(),
		Attributes:   attrs,
		Enchantments: enchants,
		Level:        level,
		Value:        value,
		CraftedAt:    time.Now().UTC(),
	}
	s.rack.put(item)

	log.Info(LogMsgItemCrafted, "item_id", item.ID, "summary", item.Summary(), "value", value)
	s.publish(ctx, event.NewItemCraftedEvent(item))

	return &CraftResult{
		Item:    item,
		Summary: item.Summary(),
		Colors:  s.colors(attrs),
	}, nil
}

func (s *service) colors(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for category, name := range attrs {
		if t, ok := s.tables[category]; ok {
			if opt, ok := t.Lookup(name); ok {
				out[category] = opt.Color.Hex()
			}
		}
	}
	return out
}

// PurchaseUpgrade spends the wallet on the next level of category.
// Rejections are reported in the outcome, not as errors.
func (s *service) PurchaseUpgrade(ctx context.Context, category string) (*PurchaseOutcome, error) {
	log := logger.FromContext(ctx)

	var (
		result upgrade.PurchaseResult
		err    error
	)
	s.lockManager.WithLock(walletLockKey, func() {
		result, err = s.ledger.Purchase(ctx, category, s.wallet.Balance())
		if err != nil || !result.Success {
			return
		}
		err = s.wallet.Spend(result.CostCharged)
	})
	if err != nil {
		return nil, err
	}

	outcome := &PurchaseOutcome{PurchaseResult: result, Balance: s.wallet.Balance()}
	if !result.Success {
		log.Info(LogMsgUpgradeRejected, "category", category, "reason", result.Reason, "balance", outcome.Balance)
		return outcome, nil
	}

	log.Info(LogMsgUpgradePurchased, "category", category, "level", result.Level, "cost", result.CostCharged)
	s.publish(ctx, event.NewUpgradePurchasedEvent(category, result.Level, result.CostCharged))
	for _, name := range result.NewlyRetired {
		s.publish(ctx, event.NewOptionRetiredEvent(category, name, result.Level))
	}
	return outcome, nil
}

// Sell sells an item from the rack
func (s *service) Sell(ctx context.Context, itemID string) (*SaleResult, error) {
	item, ok := s.rack.claim(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return s.credit(ctx, item, false), nil
}

// autoSell is the rack's eviction hook. It runs without a request context.
func (s *service) autoSell(item *domain.RolledItem) {
	s.credit(context.Background(), item, true)
}

func (s *service) credit(ctx context.Context, item *domain.RolledItem, auto bool) *SaleResult {
	log := logger.FromContext(ctx)

	balance := s.wallet.Add(item.Value)
	gained := s.progress.AddXP(domain.XPPerItemSold)
	snap := s.progress.Snapshot()

	msg := LogMsgItemSold
	if auto {
		msg = LogMsgItemAutoSold
	}
	log.Info(msg, "item_id", item.ID, "value", item.Value, "balance", balance)
	if gained > 0 {
		log.Info(LogMsgPlayerLevelUp, "level", snap.Level, "levels_gained", gained)
	}

	s.publish(ctx, event.NewItemSoldEvent(item.ID, item.Value, auto))

	return &SaleResult{
		ItemID:       item.ID,
		Value:        item.Value,
		Auto:         auto,
		Balance:      balance,
		XPGained:     domain.XPPerItemSold,
		LevelsGained: gained,
		Player:       snap,
	}
}

// Rack lists the unsold items
func (s *service) Rack(ctx context.Context) ([]*domain.RolledItem, error) {
	return s.rack.items(), nil
}

// Status reports money, player progression and every upgrade track
func (s *service) Status(ctx context.Context) (*Status, error) {
	st := &Status{
		Balance:  s.wallet.Balance(),
		Player:   s.progress.Snapshot(),
		RackSize: s.rack.len(),
	}
	for _, name := range s.ledger.Categories() {
		cs, err := s.categoryStatus(name)
		if err != nil {
			return nil, err
		}
		st.Categories = append(st.Categories, cs)
	}
	return st, nil
}

func (s *service) categoryStatus(name string) (CategoryStatus, error) {
	state, err := s.ledger.State(name)
	if err != nil {
		return CategoryStatus{}, err
	}
	return toStatus(state), nil
}

func toStatus(state upgrade.State) CategoryStatus {
	return CategoryStatus{
		Name:     state.Name,
		Level:    state.Level,
		MaxLevel: state.MaxLevel,
		NextCost: state.NextCost,
		MaxedOut: state.Level >= state.MaxLevel,
	}
}

// Categories lists every category with its effective odds
func (s *service) Categories(ctx context.Context) ([]CategoryView, error) {
	views := make([]CategoryView, 0, len(s.tables))
	for _, name := range s.ledger.Categories() {
		state, err := s.ledger.State(name)
		if err != nil {
			return nil, err
		}
		table := s.tables[name]

		view := CategoryView{CategoryStatus: toStatus(state)}
		for i, e := range state.Snapshot.Entries() {
			opt := table.At(i)
			view.Options = append(view.Options, OptionOdds{
				Name:        e.Name,
				BaseOdds:    e.BaseOdds,
				Odds:        e.Odds,
				Probability: state.Snapshot.Probability(e.Name),
				Multiplier:  opt.Multiplier,
				Color:       opt.Color.Hex(),
				Capped:      e.Capped,
				Retired:     e.Retired,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// OddsReport renders the odds report of category at its current level.
// With compare it shows level 0 next to the current level.
func (s *service) OddsReport(ctx context.Context, category string, compare bool) (string, error) {
	current, err := s.ledger.Snapshot(category)
	if err != nil {
		return "", err
	}
	if !compare {
		return odds.Report(current), nil
	}
	base := s.redistributor.Snapshot(s.tables[category], 0)
	return odds.CompareReport(base, current), nil
}

// Shutdown sells whatever is still on the rack
func (s *service) Shutdown(ctx context.Context) error {
	n := s.rack.len()
	s.rack.drain()
	logger.FromContext(ctx).Info(LogMsgRackDrained, "items", n, "balance", s.wallet.Balance())
	return ctx.Err()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}

// IsNotFound reports whether err means the requested item or category does
// not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrItemNotFound) || errors.Is(err, domain.ErrUnknownCategory)
}
