// Package upgrade tracks per-category upgrade levels, their cost curve and
// the cached effective odds for the current level.
package upgrade

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/osse101/SwordForge_Go/internal/concurrency"
	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/logger"
	"github.com/osse101/SwordForge_Go/internal/odds"
)

// CategoryConfig describes the upgrade track of one category.
type CategoryConfig struct {
	Name           string
	Level          int
	MaxLevel       int
	BaseCost       float64
	CostMultiplier float64
}

// Validate checks the cost curve and level bounds.
func (c CategoryConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: upgrade category has no name", domain.ErrInvalidInput)
	case c.MaxLevel < 0:
		return fmt.Errorf("%w: %s max level %d is negative", domain.ErrInvalidInput, c.Name, c.MaxLevel)
	case c.Level < 0 || c.Level > c.MaxLevel:
		return fmt.Errorf("%w: %s level %d outside 0..%d", domain.ErrInvalidInput, c.Name, c.Level, c.MaxLevel)
	case math.IsNaN(c.BaseCost) || c.BaseCost <= 0:
		return fmt.Errorf("%w: %s base cost must be positive", domain.ErrInvalidInput, c.Name)
	case math.IsNaN(c.CostMultiplier) || c.CostMultiplier <= 1:
		return fmt.Errorf("%w: %s cost multiplier must be greater than 1", domain.ErrInvalidInput, c.Name)
	}
	return nil
}

// PurchaseResult reports the outcome of a purchase attempt. A failed
// attempt carries the reason and leaves the category untouched.
type PurchaseResult struct {
	Category     string
	Success      bool
	CostCharged  float64
	Level        int
	NextCost     float64
	Reason       error
	NewlyRetired []string
}

// State is a read-only view of one category.
type State struct {
	Name     string
	Level    int
	MaxLevel int
	NextCost float64
	Snapshot odds.Snapshot
}

type category struct {
	cfg      CategoryConfig
	table    *domain.OptionTable
	level    int
	snapshot *odds.Snapshot
}

func (c *category) nextCost() float64 {
	if c.level >= c.cfg.MaxLevel {
		return math.MaxFloat64
	}
	cost := c.cfg.BaseCost * math.Pow(c.cfg.CostMultiplier, float64(c.level))
	if math.IsInf(cost, 1) {
		return math.MaxFloat64
	}
	return cost
}

// Ledger owns the upgrade state of every category. Each category is
// guarded by its own lock so purchases and snapshot refreshes in different
// categories do not contend.
type Ledger struct {
	redistributor *odds.Redistributor
	locks         *concurrency.LockManager
	order         []string
	categories    map[string]*category
}

// NewLedger pairs every config with the table of the same category.
func NewLedger(r *odds.Redistributor, tables []*domain.OptionTable, configs []CategoryConfig) (*Ledger, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: redistributor is required", domain.ErrInvalidInput)
	}

	byName := make(map[string]*domain.OptionTable, len(tables))
	for _, t := range tables {
		byName[t.Category()] = t
	}

	l := &Ledger{
		redistributor: r,
		locks:         concurrency.NewLockManager(),
		categories:    make(map[string]*category, len(configs)),
	}
	for _, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.categories[cfg.Name]; dup {
			return nil, fmt.Errorf("%w: upgrade category %q defined twice", domain.ErrInvalidInput, cfg.Name)
		}
		table, ok := byName[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("%w: no option table for upgrade category %q", domain.ErrUnknownCategory, cfg.Name)
		}
		l.categories[cfg.Name] = &category{cfg: cfg, table: table, level: cfg.Level}
		l.order = append(l.order, cfg.Name)
	}
	if len(l.order) == 0 {
		return nil, fmt.Errorf("%w: no upgrade categories", domain.ErrInvalidInput)
	}

	return l, nil
}

// Categories returns category names in configuration order.
func (l *Ledger) Categories() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

func (l *Ledger) get(name string) (*category, error) {
	c, ok := l.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, name)
	}
	return c, nil
}

// Table returns the option table of a category.
func (l *Ledger) Table(name string) (*domain.OptionTable, error) {
	c, err := l.get(name)
	if err != nil {
		return nil, err
	}
	return c.table, nil
}

// Level returns the current level of a category.
func (l *Ledger) Level(name string) (int, error) {
	c, err := l.get(name)
	if err != nil {
		return 0, err
	}
	var level int
	l.locks.WithLock(name, func() { level = c.level })
	return level, nil
}

// NextLevelCost is baseCost * costMultiplier^level, or math.MaxFloat64 once
// the category is at its max level.
func (l *Ledger) NextLevelCost(name string) (float64, error) {
	c, err := l.get(name)
	if err != nil {
		return 0, err
	}
	var cost float64
	l.locks.WithLock(name, func() { cost = c.nextCost() })
	return cost, nil
}

// Snapshot returns the effective odds for the category's current level.
// The snapshot is cached until the level changes.
func (l *Ledger) Snapshot(name string) (odds.Snapshot, error) {
	c, err := l.get(name)
	if err != nil {
		return odds.Snapshot{}, err
	}
	var snap odds.Snapshot
	l.locks.WithLock(name, func() { snap = l.snapshotLocked(c) })
	return snap, nil
}

// snapshotLocked must be called with the category lock held.
func (l *Ledger) snapshotLocked(c *category) odds.Snapshot {
	if c.snapshot == nil {
		snap := l.redistributor.Snapshot(c.table, c.level)
		c.snapshot = &snap
	}
	return *c.snapshot
}

// State returns a consistent view of a category.
func (l *Ledger) State(name string) (State, error) {
	c, err := l.get(name)
	if err != nil {
		return State{}, err
	}
	var st State
	l.locks.WithLock(name, func() {
		st = State{
			Name:     name,
			Level:    c.level,
			MaxLevel: c.cfg.MaxLevel,
			NextCost: c.nextCost(),
			Snapshot: l.snapshotLocked(c),
		}
	})
	return st, nil
}

// Purchase buys the next level of a category if availableFunds cover its
// cost. Insufficient funds and max level are reported through the result,
// not as errors; only an unknown category returns an error.
func (l *Ledger) Purchase(ctx context.Context, name string, availableFunds float64) (PurchaseResult, error) {
	log := logger.FromContext(ctx)

	c, err := l.get(name)
	if err != nil {
		return PurchaseResult{}, err
	}

	var result PurchaseResult
	l.locks.WithLock(name, func() {
		result = PurchaseResult{Category: name, Level: c.level, NextCost: c.nextCost()}

		if c.level >= c.cfg.MaxLevel {
			result.Reason = domain.ErrMaxLevel
			return
		}
		cost := c.nextCost()
		if math.IsNaN(availableFunds) || availableFunds < cost {
			result.Reason = domain.ErrInsufficientFunds
			return
		}

		before := l.snapshotLocked(c)

		c.level++
		c.snapshot = nil
		after := l.snapshotLocked(c)

		result.Success = true
		result.CostCharged = cost
		result.Level = c.level
		result.NextCost = c.nextCost()
		result.NewlyRetired = newlyRetired(before, after)
	})

	if result.Success {
		log.Info("Upgrade purchased", "category", name, "level", result.Level, "cost", result.CostCharged)
		for _, opt := range result.NewlyRetired {
			log.Info("Option retired", "category", name, "option", opt, "level", result.Level)
		}
	} else {
		log.Debug("Upgrade purchase rejected", "category", name, "reason", result.Reason, "funds", availableFunds)
	}

	return result, nil
}

func newlyRetired(before, after odds.Snapshot) []string {
	was := make(map[string]bool)
	for _, n := range before.RetiredNames() {
		was[n] = true
	}
	var out []string
	for _, n := range after.RetiredNames() {
		if !was[n] {
			out = append(out, n)
		}
	}
	return out
}
