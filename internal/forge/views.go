package forge

import (
	"time"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/player"
	"github.com/osse101/SwordForge_Go/internal/upgrade"
)

// Config holds the tunables of the forge service
type Config struct {
	BaseItemValue           float64
	LevelMultiplierPerLevel float64
	MaxEnchantments         int
	StartingMoney           float64
	SellCountdown           time.Duration
	SellRackSize            int
}

// SaleResult is the outcome of selling one item
type SaleResult struct {
	ItemID       string          `json:"item_id"`
	Value        float64         `json:"value"`
	Auto         bool            `json:"auto"`
	Balance      float64         `json:"balance"`
	XPGained     int             `json:"xp_gained"`
	LevelsGained int             `json:"levels_gained"`
	Player       player.Snapshot `json:"player"`
}

// PurchaseOutcome is a ledger purchase result plus the wallet afterwards
type PurchaseOutcome struct {
	upgrade.PurchaseResult
	Balance float64
}

// CategoryStatus is the upgrade state of one category
type CategoryStatus struct {
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	MaxLevel int     `json:"max_level"`
	NextCost float64 `json:"next_cost"`
	MaxedOut bool    `json:"maxed_out"`
}

// Status summarises the player and every upgrade track
type Status struct {
	Balance    float64          `json:"balance"`
	Player     player.Snapshot  `json:"player"`
	Categories []CategoryStatus `json:"categories"`
	RackSize   int              `json:"rack_size"`
}

// OptionOdds is one row of a category's effective odds
type OptionOdds struct {
	Name        string  `json:"name"`
	BaseOdds    float64 `json:"base_odds"`
	Odds        float64 `json:"odds"`
	Probability float64 `json:"probability"`
	Multiplier  float64 `json:"multiplier"`
	Color       string  `json:"color"`
	Capped      bool    `json:"capped"`
	Retired     bool    `json:"retired"`
}

// CategoryView is a category with its effective odds at the current level
type CategoryView struct {
	CategoryStatus
	Options []OptionOdds `json:"options"`
}

// CraftResult is a crafted item with display helpers resolved
type CraftResult struct {
	Item    *domain.RolledItem `json:"item"`
	Summary string             `json:"summary"`
	Colors  map[string]string  `json:"colors"`
}
